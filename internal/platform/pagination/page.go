// Package pagination normalizes page sizes and walks token-paged listings.
package pagination

import "context"

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// Walk calls visit for every item of every page, starting at token, until a
// page reports an empty next token. fetch loads the page after a token and
// returns its items and the next token.
func Walk[T any](ctx context.Context, token string, fetch func(context.Context, string) ([]T, string, error), visit func(T) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		items, next, err := fetch(ctx, token)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := visit(item); err != nil {
				return err
			}
		}
		if next == "" {
			return nil
		}
		token = next
	}
}
