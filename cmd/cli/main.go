// splash 在终端里逐页浏览图片、合集、专题或搜索结果
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"splash-go/internal/config"
	"splash-go/internal/model"
	"splash-go/internal/paging"
	"splash-go/internal/repository"
	"splash-go/internal/session"
	"splash-go/internal/unsplash"
	"splash-go/pkg/logger"

	"go.uber.org/zap"
)

const usage = `usage: splash <photos|collections|topics|search> [flags]

flags:
  -config string   config file (default "configs/config.yaml")
  -pages int       stop after this many pages, 0 for all (default 1)
  -order string    order_by for photos/topics
  -query string    search query (search only)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cmd := os.Args[1]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "configs/config.yaml", "config file")
	pages := fs.Int("pages", 1, "stop after this many pages, 0 for all")
	order := fs.String("order", "", "order_by for photos/topics")
	query := fs.String("query", "", "search query")
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init("warn", "console", "stderr", ""); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client, err := unsplash.NewClient(unsplash.Options{
		BaseURL:         cfg.Unsplash.BaseURL,
		AccessKey:       cfg.Unsplash.AccessKey,
		Timeout:         cfg.Unsplash.TimeoutDuration(),
		RequestsPerHour: cfg.Unsplash.RateLimit.RequestsPerHour,
		Burst:           cfg.Unsplash.RateLimit.Burst,
		Session:         session.NewMemoryStore(cfg.Session.Key),
	})
	if err != nil {
		logger.Fatal("Failed to create upstream client", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	perPage := cfg.Unsplash.PerPage
	switch cmd {
	case "photos":
		orderBy := model.OrderLatest
		if *order != "" {
			orderBy = model.PhotoOrder(*order)
		}
		repo := repository.NewPhotosRepository(unsplash.NewPhotoService(client), perPage)
		err = browse(ctx, repo.GetPhotos(orderBy).Pager(), *pages, formatPhoto)
	case "collections":
		repo := repository.NewCollectionRepository(unsplash.NewCollectionService(client), perPage)
		err = browse(ctx, repo.GetCollections().Pager(), *pages, formatCollection)
	case "topics":
		repo := repository.NewTopicRepository(unsplash.NewTopicService(client), perPage)
		err = browse(ctx, repo.GetTopics(*order).Pager(), *pages, formatTopic)
	case "search":
		repo := repository.NewSearchRepository(unsplash.NewSearchService(client), perPage)
		err = browse(ctx, repo.SearchPhotos(unsplash.PhotoSearch{Query: *query}).Pager(), *pages, formatPhoto)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// browse 逐页追加并打印新页，直到没有下一页或达到 limit
func browse[T any](ctx context.Context, pager *paging.Pager[T], limit int, format func(T) string) error {
	for n := 0; limit <= 0 || n < limit; n++ {
		snap, err := pager.Append(ctx)
		if err != nil {
			return err
		}
		if len(snap.Pages) == 0 {
			return nil
		}
		page := snap.Pages[len(snap.Pages)-1]
		fmt.Printf("-- page %d (%d items, %d total)\n", page.Key, len(page.Items), snap.Len())
		for _, item := range page.Items {
			fmt.Println(format(item))
		}
		if page.NextKey == nil {
			fmt.Println("-- end")
			return nil
		}
	}
	return nil
}

func formatPhoto(p model.Photo) string {
	author := "-"
	if p.User != nil {
		author = p.User.Username
	}
	return fmt.Sprintf("%s\t%dx%d\t%d likes\t@%s", p.ID, p.Width, p.Height, p.Likes, author)
}

func formatCollection(c model.Collection) string {
	return fmt.Sprintf("%s\t%s\t%d photos", c.ID, c.Title, c.TotalPhotos)
}

func formatTopic(t model.Topic) string {
	return fmt.Sprintf("%s\t%s\t%d photos", t.Slug, t.Title, t.TotalPhotos)
}
