// Package prizeinspect lists, shows, dumps and deletes prizes in the SQLite
// prize store.
package prizeinspect

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/louisbranch/andaria/internal/platform/pagination"
	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"github.com/louisbranch/andaria/internal/services/game/i18n"
	"github.com/louisbranch/andaria/internal/services/game/storage"
	storagesqlite "github.com/louisbranch/andaria/internal/services/game/storage/sqlite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

const tracerName = "github.com/louisbranch/andaria/internal/tools/prizeinspect"

var pageSizes = pagination.PageSizeConfig{Default: 50, Max: 500}

// Run opens the store named by cfg and executes the selected command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	store, err := storagesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open prize store: %w", err)
	}
	defer store.Close()
	return Inspect(ctx, store, cfg, out)
}

// Inspect executes the command selected by cfg against store.
func Inspect(ctx context.Context, store storage.PrizeStore, cfg Config, out io.Writer) (err error) {
	if store == nil {
		return fmt.Errorf("prize store is required")
	}
	if out == nil {
		out = io.Discard
	}

	m := cfg.mode()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "prizes.inspect",
		trace.WithAttributes(attribute.String("prizes.mode", string(m))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	printer := i18n.Printer(cfg.Locale)
	id := strings.TrimSpace(cfg.ID)
	switch m {
	case modeShow:
		return show(ctx, store, id, printer, out)
	case modeHex:
		return dump(ctx, store, id, out)
	case modeDelete:
		if err := store.DeletePrize(ctx, id); err != nil {
			return err
		}
		log.Printf("deleted prize %s", id)
		_, err := fmt.Fprintf(out, "deleted %s\n", id)
		return err
	default:
		n, err := list(ctx, store, cfg, printer, out)
		span.SetAttributes(attribute.Int("prizes.count", n))
		return err
	}
}

func list(ctx context.Context, store storage.PrizeStore, cfg Config, printer *message.Printer, out io.Writer) (int, error) {
	pageSize := pagination.ClampPageSize(cfg.PageSize, pageSizes)
	count := 0
	visit := func(record storage.PrizeRecord) error {
		count++
		return writeSummary(out, record, printer)
	}

	if cfg.All {
		fetch := func(ctx context.Context, token string) ([]storage.PrizeRecord, string, error) {
			page, err := store.ListPrizes(ctx, pageSize, token, cfg.Filter)
			return page.Prizes, page.NextPageToken, err
		}
		err := pagination.Walk(ctx, cfg.PageToken, fetch, visit)
		return count, err
	}

	page, err := store.ListPrizes(ctx, pageSize, cfg.PageToken, cfg.Filter)
	if err != nil {
		return 0, err
	}
	for _, record := range page.Prizes {
		if err := visit(record); err != nil {
			return count, err
		}
	}
	if page.NextPageToken != "" {
		if _, err := fmt.Fprintf(out, "next page token: %s\n", page.NextPageToken); err != nil {
			return count, err
		}
	}
	return count, nil
}

func writeSummary(out io.Writer, record storage.PrizeRecord, printer *message.Printer) error {
	p := record.Prize
	if _, err := fmt.Fprintf(out, "%s  source=%s gold=%d experience=%d effects=%d\n",
		record.ID, record.Source, p.Gold(), p.Experience(), len(p.Effects())); err != nil {
		return err
	}
	return writeLines(out, p.Describe(printer))
}

func show(ctx context.Context, store storage.PrizeStore, id string, printer *message.Printer, out io.Writer) error {
	record, err := store.GetPrize(ctx, id)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "id: %s\nsource: %s\ncreated: %s\nupdated: %s\n",
		record.ID, record.Source,
		record.CreatedAt.Format(time.RFC3339), record.UpdatedAt.Format(time.RFC3339)); err != nil {
		return err
	}
	if err := writeLines(out, record.Prize.Describe(printer)); err != nil {
		return err
	}

	totals := effectTotals(record.Prize.Effects(), printer)
	if len(totals) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(out, "totals:"); err != nil {
		return err
	}
	return writeLines(out, totals)
}

// effectTotals sums effect values per type, grouped in category order.
func effectTotals(effects []effect.Effect, printer *message.Printer) []string {
	var lines []string
	for _, c := range effect.Categories() {
		inCategory := effect.FilterCategory(effects, c)
		if len(inCategory) == 0 {
			continue
		}
		var types []effect.Type
		for _, e := range inCategory {
			if !slices.Contains(types, e.Type) {
				types = append(types, e.Type)
			}
		}
		slices.Sort(types)
		for _, t := range types {
			lines = append(lines, printer.Sprintf("%s / %s: %+d",
				printer.Sprintf(c.Label()), printer.Sprintf(t.Label()), effect.SumValueOf(inCategory, t)))
		}
	}
	return lines
}

func dump(ctx context.Context, store storage.PrizeStore, id string, out io.Writer) error {
	record, err := store.GetPrize(ctx, id)
	if err != nil {
		return err
	}
	data, err := record.Prize.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode prize %s: %w", id, err)
	}
	_, err = io.WriteString(out, hex.Dump(data))
	return err
}

func writeLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(out, "  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
