package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splash-go/internal/model"
)

func TestPhoto_AllFieldsAbsent(t *testing.T) {
	p := Photo{}.ToDomain()

	assert.Equal(t, "", p.ID)
	assert.Equal(t, 0, p.Width)
	assert.Equal(t, 0, p.Likes)
	assert.False(t, p.LikedByUser)
	assert.True(t, p.CreatedAt.IsZero())
	assert.Nil(t, p.Description)
	assert.Nil(t, p.PromotedAt)
	assert.Nil(t, p.Exif)
	assert.Nil(t, p.Location)
	assert.Nil(t, p.User)
	assert.Nil(t, p.Tags, "tags absent means not requested")
	assert.NotNil(t, p.CurrentUserCollections)
	assert.Empty(t, p.CurrentUserCollections)
	assert.Equal(t, model.Urls{}, p.Urls)
	assert.Equal(t, model.PhotoLinks{}, p.Links)
}

func TestAllDTOs_ZeroValueMapsWithoutPanic(t *testing.T) {
	require.NotPanics(t, func() {
		_ = Collection{}.ToDomain()
		_ = Topic{}.ToDomain()
		_ = User{}.ToDomain()
		_ = LikeResult{}.ToDomain()
		_ = CollectionPhotoResult{}.ToDomain()
		_ = AccessToken{}.ToDomain()
		_ = DownloadLink{}.ToDomain()
		_ = PreviewPhoto{}.ToDomain()
		_ = Location{}.ToDomain()
		_ = Exif{}.ToDomain()
		_ = UserTags{}.ToDomain()
	})

	c := Collection{}.ToDomain()
	assert.Equal(t, 0, c.TotalPhotos)
	assert.Nil(t, c.CoverPhoto)
	assert.Nil(t, c.Description)
	assert.Empty(t, c.PreviewPhotos)
	assert.NotNil(t, c.PreviewPhotos)
	assert.NotNil(t, c.Tags)

	topic := Topic{}.ToDomain()
	assert.Nil(t, topic.EndsAt)
	assert.NotNil(t, topic.Owners)

	u := User{}.ToDomain()
	assert.Nil(t, u.Bio)
	assert.Nil(t, u.Badge)
	assert.Nil(t, u.Tags)
	assert.Equal(t, model.ProfileImage{}, u.ProfileImage)

	r := CollectionPhotoResult{}.ToDomain()
	assert.Equal(t, "", r.Photo.ID)
	assert.Nil(t, r.User)
}

func TestPhoto_FromPartialJSON(t *testing.T) {
	raw := `{
		"id": "p1",
		"created_at": "2016-05-03T11:00:28-04:00",
		"width": 5245,
		"height": 3497,
		"color": "#60544D",
		"likes": 12,
		"liked_by_user": true,
		"description": null,
		"exif": {"make": "Canon", "iso": 100},
		"location": {"city": "Montreal", "position": {"latitude": 45.47, "longitude": -73.59}},
		"urls": {"regular": "https://images.example/p1?w=1080"},
		"user": {"id": "u1", "username": "jane", "bio": "hi"},
		"tags": []
	}`

	var d Photo
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	p := d.ToDomain()

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 2016, p.CreatedAt.Year())
	assert.Equal(t, 5245, p.Width)
	assert.True(t, p.LikedByUser)
	assert.Nil(t, p.Description)
	require.NotNil(t, p.Exif)
	assert.Equal(t, "Canon", p.Exif.Make)
	assert.Equal(t, "", p.Exif.Model)
	assert.Equal(t, 100, p.Exif.ISO)
	require.NotNil(t, p.Location)
	assert.Equal(t, "Montreal", p.Location.City)
	assert.InDelta(t, -73.59, p.Location.Position.Longitude, 1e-9)
	assert.Equal(t, "https://images.example/p1?w=1080", p.Urls.Regular)
	assert.Equal(t, "", p.Urls.Raw)
	require.NotNil(t, p.User)
	assert.Equal(t, "jane", p.User.Username)
	require.NotNil(t, p.User.Bio)
	assert.Equal(t, "hi", *p.User.Bio)
	assert.NotNil(t, p.Tags, "present but empty stays empty")
	assert.Empty(t, p.Tags)
}

func TestTimestamp_MalformedDegradesToZero(t *testing.T) {
	bad := "not-a-date"
	assert.True(t, timestamp(&bad).IsZero())
	assert.Nil(t, optTimestamp(&bad))

	good := "2020-01-02T03:04:05Z"
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), timestamp(&good))
}

func TestOptStr_CopiesValue(t *testing.T) {
	s := "desc"
	out := optStr(&s)
	s = "changed"
	require.NotNil(t, out)
	assert.Equal(t, "desc", *out)
}

func TestSearchResult_Defaults(t *testing.T) {
	var d SearchResult[Photo]
	assert.Equal(t, 0, d.TotalCount())
	assert.NotNil(t, d.Items())
	assert.Empty(t, d.Items())

	raw := `{"total": 2, "total_pages": 1, "results": [{"id": "a"}, {"id": "b"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	assert.Equal(t, 2, d.TotalCount())
	require.Len(t, d.Items(), 2)
	assert.Equal(t, "b", d.Items()[1].ToDomain().ID)
}

func TestCollectionPhotoResult_FromJSON(t *testing.T) {
	raw := `{"photo": {"id": "p1"}, "collection": {"id": "c1", "total_photos": 3}, "created_at": "2021-06-01T00:00:00Z"}`
	var d CollectionPhotoResult
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	r := d.ToDomain()
	assert.Equal(t, "p1", r.Photo.ID)
	assert.Equal(t, "c1", r.Collection.ID)
	assert.Equal(t, 3, r.Collection.TotalPhotos)
	assert.Nil(t, r.User)
	assert.Equal(t, 2021, r.CreatedAt.Year())
}

func TestPhoto_MalformedNestedObjectsMapToNil(t *testing.T) {
	raw := `[{"id":"a","exif":[1,2]},"junk",{"id":"c","user":5,"location":"Paris"}]`

	var list []Photo
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 3)

	a := list[0].ToDomain()
	assert.Equal(t, "a", a.ID)
	assert.Nil(t, a.Exif)

	assert.Equal(t, "", list[1].ToDomain().ID)

	c := list[2].ToDomain()
	assert.Equal(t, "c", c.ID)
	assert.Nil(t, c.User)
	assert.Nil(t, c.Location)
}

func TestPhoto_MalformedFieldInsideNestedObjectKeepsTheRest(t *testing.T) {
	raw := `{"id":"p1","exif":{"make":"Canon","iso":"high"},"user":{"username":"jane","badge":true},"likes":3}`

	var d Photo
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	p := d.ToDomain()

	assert.Equal(t, 3, p.Likes)
	require.NotNil(t, p.Exif)
	assert.Equal(t, "Canon", p.Exif.Make)
	assert.Equal(t, 0, p.Exif.ISO)
	require.NotNil(t, p.User)
	assert.Equal(t, "jane", p.User.Username)
	assert.Nil(t, p.User.Badge)
}

func TestPhoto_NullNestedObjectStaysNil(t *testing.T) {
	var d Photo
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","exif":null,"user":null}`), &d))
	assert.Nil(t, d.Exif)
	assert.Nil(t, d.ToDomain().User)
}
