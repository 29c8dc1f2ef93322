package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"log-reader/internal/models"
	"log-reader/internal/shared/filestorages"
)

const reportIndent = "    "

var ErrReportAlreadyExists = errors.New("report already exists")

//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// CheckWritable fails with ErrReportAlreadyExists when the report may not be overwritten and
	// is already there, so a run can be refused before any file is read.
	CheckWritable(ctx context.Context) error
	// Save writes statistic as the report in one atomic step.
	Save(ctx context.Context, statistic models.StatisticMap) error
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	key         string
	overwrite   bool
}

func NewReportStore(fileStorage filestorages.FileStorage, key string, overwrite bool) ReportStore {
	return &reportStore{fileStorage: fileStorage, key: key, overwrite: overwrite}
}

func (s *reportStore) CheckWritable(ctx context.Context) error {
	if s.overwrite {
		return nil
	}
	exists, err := s.fileStorage.Exists(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to check report %s: %w", s.key, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrReportAlreadyExists, s.key)
	}
	return nil
}

func (s *reportStore) Save(ctx context.Context, statistic models.StatisticMap) error {
	data, err := MarshalReport(statistic)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: s.overwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrReportAlreadyExists, s.key)
		}
		return fmt.Errorf("failed to put report: %w", err)
	}
	return nil
}

// MarshalReport encodes statistic as JSON with four-space indentation and keys sorted at every
// level. A nil map encodes as an empty object.
func MarshalReport(statistic models.StatisticMap) ([]byte, error) {
	if statistic == nil {
		statistic = models.StatisticMap{}
	}
	return json.MarshalIndent(statistic, "", reportIndent)
}
