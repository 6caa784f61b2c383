// Package importer loads EP and GP balances from a spreadsheet export.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/logger"
)

// UserFinder resolves a row's name to a user
type UserFinder interface {
	FindUser(ctx context.Context, query string) (*domain.User, error)
}

// Ledger is the part of the ledger service the importer writes through
type Ledger interface {
	CreateOrGetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error)
	Load(ctx context.Context, key domain.BucketKey, value int64) (*domain.LedgerEntry, error)
}

// Result lists the names whose balances were loaded and the names that
// matched no user
type Result struct {
	Loaded  []string `json:"loaded"`
	Skipped []string `json:"skipped"`
}

// Importer loads balances into one team and tier
type Importer struct {
	users  UserFinder
	ledger Ledger
}

// New creates an importer
func New(users UserFinder, ledger Ledger) *Importer {
	return &Importer{users: users, ledger: ledger}
}

type row struct {
	line   int
	name   string
	ep, gp int64
}

// Import reads a CSV with a Name,EP,GP header and loads each row into the
// EP and GP buckets of the row's user. Every row is parsed before anything
// is written, so a malformed value leaves the ledger untouched.
func (im *Importer) Import(ctx context.Context, r io.Reader, teamID int64, tier int) (*Result, error) {
	rows, err := parse(r)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgImportStarted, "team_id", teamID, "tier", tier, "rows", len(rows))

	result := &Result{Loaded: []string{}, Skipped: []string{}}
	for _, rw := range rows {
		user, err := im.users.FindUser(ctx, rw.name)
		if errors.Is(err, domain.ErrUserNotFound) {
			log.Warn(LogMsgUserNotFound, "row", rw.line, "name", rw.name)
			result.Skipped = append(result.Skipped, rw.name)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("%s %q: %w", ErrContextFindUser, rw.name, err)
		}

		values := map[domain.PointType]int64{domain.PointTypeEP: rw.ep, domain.PointTypeGP: rw.gp}
		for _, pt := range domain.PointTypes {
			key := domain.BucketKey{UserID: user.ID, TeamID: teamID, Tier: tier, PointType: pt}
			if _, err := im.ledger.CreateOrGetBucket(ctx, key); err != nil {
				return result, fmt.Errorf("%s: %w", ErrContextGetBucket, err)
			}
			if _, err := im.ledger.Load(ctx, key, values[pt]); err != nil {
				return result, fmt.Errorf("%s: %w", ErrContextLoad, err)
			}
		}

		log.Info(LogMsgRowLoaded, "name", rw.name, "user_id", user.ID, "ep", rw.ep, "gp", rw.gp)
		result.Loaded = append(result.Loaded, rw.name)
	}

	log.Info(LogMsgImportFinished, "loaded", len(result.Loaded), "skipped", len(result.Skipped))
	return result, nil
}

func parse(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReadCSV, err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.TrimSpace(h)] = i
	}
	for _, c := range []string{ColumnName, ColumnEP, ColumnGP} {
		if _, ok := columns[c]; !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgMissingColumn, domain.ErrInvalidParameter, c)
		}
	}

	var rows []row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextReadCSV, err)
		}
		line, _ := reader.FieldPos(0)

		rw := row{line: line, name: strings.TrimSpace(record[columns[ColumnName]])}
		if rw.name == "" {
			return nil, fmt.Errorf("%w: "+ErrMsgEmptyName, domain.ErrInvalidParameter, line)
		}
		if rw.ep, err = roundValue(record[columns[ColumnEP]]); err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgMalformedValue, domain.ErrInvalidParameter, line, ColumnEP, record[columns[ColumnEP]])
		}
		if rw.gp, err = roundValue(record[columns[ColumnGP]]); err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgMalformedValue, domain.ErrInvalidParameter, line, ColumnGP, record[columns[ColumnGP]])
		}
		rows = append(rows, rw)
	}
}

// roundValue rounds decimal text to the nearest integer, halves away from zero
func roundValue(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return d.Round(0).IntPart(), nil
}
