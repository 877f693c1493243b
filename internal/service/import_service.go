package service

import (
	"context"
	"encoding/csv"
	"english_learning_backend/internal/model"
	"english_learning_backend/internal/util"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const vocabularySheet = "Vocabulary"

// Column order of exported sheets. Imports match headers case-insensitively
// and ignore unknown columns.
var vocabularyColumns = []string{
	"ID_TV", "Word", "Meaning", "Pronunciation", "PartOfSpeech",
	"Example", "ExampleMeaning", "Level", "ID_CD", "ImageUrl", "AudioUrl",
}

// ImportResult summarises one spreadsheet import.
// swagger:model ImportResult
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type VocabularyImportService struct {
	Repo ContentStore[model.Vocabulary]
}

func NewVocabularyImportService(repo ContentStore[model.Vocabulary]) *VocabularyImportService {
	return &VocabularyImportService{Repo: repo}
}

// ReadRows loads all rows of an .xlsx workbook's first sheet or a .csv file.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return f.GetRows(f.GetSheetName(0))
	case ".csv":
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true
		return reader.ReadAll()
	default:
		return nil, util.ErrUnsupportedFile
	}
}

// ParseVocabularyRows maps a header row plus data rows onto vocabulary items.
// Rows that fail to parse or validate are reported by their 1-based line.
func ParseVocabularyRows(rows [][]string) ([]model.Vocabulary, []string, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: empty sheet", util.ErrInvalidInput)
	}

	index := make(map[string]int)
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"word", "meaning"} {
		if _, ok := index[required]; !ok {
			return nil, nil, fmt.Errorf("%w: missing column %q", util.ErrInvalidInput, required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := index[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	number := func(row []string, name string) (int, error) {
		v := cell(row, name)
		if v == "" {
			return 0, nil
		}
		return strconv.Atoi(v)
	}

	var (
		items    []model.Vocabulary
		problems []string
	)
	for n, row := range rows[1:] {
		line := n + 2
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}

		id, err := number(row, "ID_TV")
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: bad ID_TV", line))
			continue
		}
		topicID, err := number(row, "ID_CD")
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: bad ID_CD", line))
			continue
		}

		v := model.Vocabulary{
			VocabularyID:   id,
			Word:           cell(row, "Word"),
			Meaning:        cell(row, "Meaning"),
			Pronunciation:  cell(row, "Pronunciation"),
			PartOfSpeech:   cell(row, "PartOfSpeech"),
			Example:        cell(row, "Example"),
			ExampleMeaning: cell(row, "ExampleMeaning"),
			Level:          strings.ToUpper(cell(row, "Level")),
			TopicID:        topicID,
			ImageURL:       cell(row, "ImageUrl"),
			AudioURL:       cell(row, "AudioUrl"),
		}
		// keys are assigned on insert when the sheet leaves them blank
		if err := util.Validator().StructExcept(v, "VocabularyID"); err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		items = append(items, v)
	}
	return items, problems, nil
}

func (s *VocabularyImportService) Import(ctx context.Context, r io.Reader, filename string) (*ImportResult, error) {
	rows, err := ReadRows(r, filename)
	if err != nil {
		return nil, err
	}
	items, problems, err := ParseVocabularyRows(rows)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Skipped: len(problems), Errors: problems}
	for i := range items {
		if s.Repo.Create(ctx, &items[i]) == nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("word %q: could not be stored", items[i].Word))
			continue
		}
		result.Imported++
	}
	if result.Errors == nil {
		result.Errors = []string{}
	}
	return result, nil
}

// Export writes every vocabulary item to a single-sheet workbook.
func (s *VocabularyImportService) Export(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), vocabularySheet); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(vocabularyColumns))
	for i, c := range vocabularyColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(vocabularySheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, v := range s.Repo.GetAll(ctx) {
		row := []interface{}{
			v.VocabularyID, v.Word, v.Meaning, v.Pronunciation, v.PartOfSpeech,
			v.Example, v.ExampleMeaning, v.Level, v.TopicID, v.ImageURL, v.AudioURL,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(vocabularySheet, cellRef, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
