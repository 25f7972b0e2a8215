package importer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// MaxFileSize bounds uploaded menu files (10MB).
const MaxFileSize = 10 << 20

// Parse detects the format from the filename and runs the matching
// adapter over the file contents.
func Parse(filename string, data []byte) (*Result, error) {
	format, err := Detect(filename)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return ParseCSV(data)
	case FormatJSON:
		return ParseJSON(data)
	case FormatExcel:
		return ParseExcel(data)
	case FormatMarkdown:
		return ParseMarkdown(data)
	case FormatHTML:
		return ParseHTML(data)
	case FormatText:
		return ParseText(data)
	default:
		return nil, &UnsupportedFormatError{Ext: string(format)}
	}
}

type Service struct {
	orchestrator *Orchestrator
	log          *logrus.Logger
}

func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{
		orchestrator: NewOrchestrator(store),
		log:          log,
	}
}

// ImportFile runs one uploaded file end-to-end: parse, normalize,
// reconcile against the restaurant's persisted menu.
func (s *Service) ImportFile(
	ctx context.Context,
	restaurantID int,
	filename string,
	data []byte,
) (*Summary, error) {

	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("file exceeds %dMB limit", MaxFileSize>>20)
	}

	result, err := Parse(filename, data)
	if err != nil {
		return nil, err
	}

	summary, err := s.orchestrator.Import(ctx, restaurantID, result)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"restaurant_id":  restaurantID,
		"filename":       filename,
		"categories":     summary.Categories,
		"sub_categories": summary.SubCategories,
		"items":          summary.Items,
	}).Info("menu import completed")

	return summary, nil
}
