package embedmatch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BuildCorpus embeds contents, calling the provider at most once per distinct
// string. The result has the same length and order as contents, duplicates
// included; every occurrence of a string resolves to the first value computed
// for it. Provider calls run concurrently up to the cache's concurrency limit.
// On failure the remaining calls are cancelled and no partial corpus is returned.
func (c *Cache) BuildCorpus(ctx context.Context, contents []string) ([]EmbeddedValue, error) {
	if len(contents) == 0 {
		return []EmbeddedValue{}, nil
	}

	unique := distinct(contents)
	values := make([]EmbeddedValue, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, content := range unique {
		g.Go(func() error {
			value, err := c.MakeEmbedded(gctx, content)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byContent := make(map[string]EmbeddedValue, len(values))
	for _, value := range values {
		if _, ok := byContent[value.Content]; !ok {
			byContent[value.Content] = value
		}
	}

	corpus := make([]EmbeddedValue, len(contents))
	for i, content := range contents {
		corpus[i] = byContent[content]
	}

	c.logger.Debug("built corpus",
		zap.Int("inputs", len(contents)),
		zap.Int("distinct", len(unique)),
	)
	return corpus, nil
}

// distinct returns the distinct values of contents in first-occurrence order.
func distinct(contents []string) []string {
	seen := make(map[string]struct{}, len(contents))
	unique := make([]string, 0, len(contents))
	for _, content := range contents {
		if _, ok := seen[content]; ok {
			continue
		}
		seen[content] = struct{}{}
		unique = append(unique, content)
	}
	return unique
}
