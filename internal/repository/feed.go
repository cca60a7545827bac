package repository

import (
	"context"
	"strings"

	"splash-go/internal/paging"
	"splash-go/internal/resource"
	"splash-go/internal/unsplash/dto"
)

// pointResult 把单次调用的 DTO 结果映射为领域对象，取消原样返回
func pointResult[D, M any](res resource.Resource[D], err error, fn func(D) M) (resource.Resource[M], error) {
	if err != nil {
		return resource.Empty[M](), err
	}
	return resource.Map(res, fn), nil
}

func mapAll[D, M any](in []D, fn func(D) M) []M {
	out := make([]M, len(in))
	for i, d := range in {
		out[i] = fn(d)
	}
	return out
}

// listFeed 列表接口的分页入口
func listFeed[D, M any](
	perPage int,
	fetch func(ctx context.Context, page, perPage int) (resource.Resource[[]D], error),
	fn func(D) M,
) paging.Feed[M] {
	return paging.NewFeed(func(ctx context.Context, page, perPage int) (resource.Resource[[]M], error) {
		res, err := fetch(ctx, page, perPage)
		return pointResult(res, err, func(items []D) []M { return mapAll(items, fn) })
	}, perPage)
}

// searchFeed 搜索接口的分页入口；空白查询直接返回空页，不发请求
func searchFeed[D, M any](
	perPage int,
	query string,
	fetch func(ctx context.Context, page, perPage int) (resource.Resource[dto.SearchResult[D]], error),
	fn func(D) M,
) paging.Feed[M] {
	blank := strings.TrimSpace(query) == ""
	return paging.NewFeed(func(ctx context.Context, page, perPage int) (resource.Resource[[]M], error) {
		if blank {
			return resource.Success([]M{}), nil
		}
		res, err := fetch(ctx, page, perPage)
		return pointResult(res, err, func(r dto.SearchResult[D]) []M { return mapAll(r.Items(), fn) })
	}, perPage)
}
