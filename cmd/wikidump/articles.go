package main

import (
	"fmt"

	"github.com/fwojciec/wikidump"
)

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	filter := wikidump.ArticleFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
		SortBy: wikidump.SortByPageID,
	}
	if c.Namespace >= 0 {
		ns := c.Namespace
		filter.Namespace = &ns
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikidump.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'wikidump extract --db' to populate a database.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", a.PageID, a.Title, a.URL)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "%s\n\n", a.Body)
		}
	}

	return nil
}
