package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/libris/catalog-api/internal/domain"
	"github.com/libris/catalog-api/internal/store"
)

// sampleBook mirrors the shape of a seed record before it becomes a
// domain.Book.
type sampleBook struct {
	isbn          string
	title         string
	subtitle      string
	copyrightYear int
	status        string
}

// sampleBooks is the starter catalog inserted into an empty database.
var sampleBooks = []sampleBook{
	{
		isbn:          "9780300267662",
		title:         "Why Architecture Matters",
		subtitle:      "A classic work on the joy of experiencing architecture",
		copyrightYear: 2023,
		status:        "APPROVED",
	},
	{
		isbn:          "978-31-10914-67-5",
		title:         "The Death Penalty",
		copyrightYear: 2026,
		status:        "PENDING",
	},
	{
		isbn:          "9783110545982",
		title:         "Qualitative Interviews",
		copyrightYear: 2025,
		status:        "REJECTED",
	},
	{
		isbn:          "978-05-20392-30-4",
		title:         "Equality within Our Lifetimes",
		subtitle:      "A free ebook version of this title is available through Luminos",
		copyrightYear: 2000,
		status:        "APPROVED",
	},
	{
		isbn:          "9780520392314",
		title:         "A General Theory of Crime",
		copyrightYear: 2022,
		status:        "APPROVED",
	},
	{
		isbn:          "9780300268478",
		title:         "The Great New York Fire of 1776",
		subtitle:      "Who set the mysterious fire",
		copyrightYear: 2010,
		status:        "APPROVED",
	},
}

// seedBooks inserts the sample catalog when the books table is empty.
// The check and the inserts share one transaction so concurrent startups
// cannot double-seed.
func seedBooks(ctx context.Context, bookStore store.BookStore, logger *slog.Logger) error {
	return bookStore.WithinTx(ctx, func(ctx context.Context, txStore store.BookStore) error {
		existing, err := txStore.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing books: %w", err)
		}

		if len(existing) > 0 {
			logger.Debug("books table already populated, skipping seed",
				"count", len(existing))
			return nil
		}

		for _, sample := range sampleBooks {
			book, err := domain.NewBook(
				sample.isbn,
				sample.title,
				sample.subtitle,
				sample.copyrightYear,
				sample.status,
			)
			if err != nil {
				return fmt.Errorf("invalid sample book %q: %w", sample.title, err)
			}

			if err := txStore.Create(ctx, book); err != nil {
				return fmt.Errorf("failed to seed book %q: %w", sample.title, err)
			}
		}

		logger.Info("Database initialized with sample books", "count", len(sampleBooks))
		return nil
	})
}
