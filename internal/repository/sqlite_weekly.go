package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/alexanderramin/zeitrechner/internal/xslog"
	go_json "github.com/goccy/go-json"
)

// SQLiteWeeklyRepo persists the weekly log as a single JSON object under
// domain.KeyWeeklyEntries.
type SQLiteWeeklyRepo struct {
	kv     KVRepo
	logger *slog.Logger
}

func NewSQLiteWeeklyRepo(kv KVRepo, logger *slog.Logger) *SQLiteWeeklyRepo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteWeeklyRepo{kv: kv, logger: logger}
}

func (r *SQLiteWeeklyRepo) Load(ctx context.Context) (domain.WeeklyEntries, error) {
	raw, err := r.kv.Get(ctx, domain.KeyWeeklyEntries)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.WeeklyEntries{}, nil
		}
		return nil, err
	}

	entries, dropped, err := decodeWeeklyEntries(raw)
	if err != nil {
		r.logger.DebugContext(ctx, "discarding malformed weekly entries",
			xslog.Key(domain.KeyWeeklyEntries), xslog.Error(err))
		return domain.WeeklyEntries{}, nil
	}
	for _, day := range dropped {
		r.logger.DebugContext(ctx, "dropping invalid weekly entry", xslog.Key(day))
	}
	return entries, nil
}

func (r *SQLiteWeeklyRepo) Store(ctx context.Context, entries domain.WeeklyEntries) error {
	raw, err := EncodeWeeklyEntries(entries)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, domain.KeyWeeklyEntries, raw)
}

func (r *SQLiteWeeklyRepo) Revision(ctx context.Context) (domain.Revision, error) {
	return r.kv.Revision(ctx, domain.KeyWeeklyEntries)
}

// DecodeWeeklyEntries parses a stored weekly document. Anything but a JSON
// object is an error; null decodes to an empty log. Values that are not
// positive numbers are dropped one by one, fractional minutes are rounded
// half up.
func DecodeWeeklyEntries(raw string) (domain.WeeklyEntries, error) {
	entries, _, err := decodeWeeklyEntries(raw)
	return entries, err
}

func decodeWeeklyEntries(raw string) (domain.WeeklyEntries, []string, error) {
	var decoded map[string]any
	if err := go_json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, nil, fmt.Errorf("decoding weekly entries: %w", err)
	}
	entries := make(domain.WeeklyEntries, len(decoded))
	var dropped []string
	for day, value := range decoded {
		minutes, ok := value.(float64)
		if !ok || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
			dropped = append(dropped, day)
			continue
		}
		if rounded := int(math.Floor(minutes + 0.5)); rounded > 0 {
			entries[day] = rounded
		}
	}
	slices.Sort(dropped)
	return entries, dropped, nil
}

// EncodeWeeklyEntries serializes the full log. Keys come out sorted.
func EncodeWeeklyEntries(entries domain.WeeklyEntries) (string, error) {
	if entries == nil {
		entries = domain.WeeklyEntries{}
	}
	raw, err := go_json.Marshal(map[string]int(entries))
	if err != nil {
		return "", fmt.Errorf("encoding weekly entries: %w", err)
	}
	return string(raw), nil
}
