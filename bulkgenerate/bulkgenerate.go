package bulkgenerate

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/customeros/namesherpa/internal/util"
	"github.com/customeros/namesherpa/namegen"
)

const defaultBatchSize = 10

// ErrCheckpointMismatch is returned when a checkpoint was written for a run
// with a different gender, style or count than the request.
var ErrCheckpointMismatch = errors.New("checkpoint belongs to a different run")

var header = []string{"run_id", "gender", "style", "kanji", "romaji", "pronunciation", "meaning"}

type Request struct {
	Gender     namegen.Gender
	Style      string
	Count      int
	OutputFile string
	// Defaults to OutputFile + ".checkpoint.json".
	CheckpointFile string
	BatchSize      int
	// Progress bar destination. Nil disables the bar.
	Progress io.Writer
}

type Checkpoint struct {
	RunID         string         `json:"runId"`
	Gender        namegen.Gender `json:"gender"`
	Style         string         `json:"style"`
	Count         int            `json:"count"`
	ProcessedRows int            `json:"processedRows"`
}

type Result struct {
	RunID      string `json:"runId"`
	Generated  int    `json:"generated"`
	Total      int    `json:"total"`
	OutputFile string `json:"outputFile"`
}

// Run composes req.Count names into a CSV file in batches. A checkpoint is
// saved after each batch so an interrupted run continues where it stopped.
// The checkpoint is removed once the file is complete.
func Run(ctx context.Context, composer *namegen.Composer, req Request, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	gender, err := namegen.ParseGender(string(req.Gender))
	if err != nil {
		return Result{}, err
	}
	if req.Count <= 0 {
		return Result{}, fmt.Errorf("count must be positive, got %d", req.Count)
	}
	if req.OutputFile == "" {
		return Result{}, fmt.Errorf("output file is required")
	}
	if req.CheckpointFile == "" {
		req.CheckpointFile = req.OutputFile + ".checkpoint.json"
	}
	if req.BatchSize <= 0 {
		req.BatchSize = defaultBatchSize
	}

	style := composer.ResolveStyle(req.Style)

	checkpoint, err := loadCheckpoint(req.CheckpointFile)
	if err != nil {
		return Result{}, fmt.Errorf("error loading checkpoint: %w", err)
	}
	outputFileExists := checkpoint.ProcessedRows > 0 && fileExists(req.OutputFile)
	if outputFileExists {
		if err := checkpoint.matches(gender, style, req.Count); err != nil {
			return Result{}, err
		}
	} else {
		checkpoint = Checkpoint{Gender: gender, Style: style, Count: req.Count}
	}
	if checkpoint.RunID == "" {
		if checkpoint.RunID, err = util.GenerateRunID(); err != nil {
			return Result{}, fmt.Errorf("error generating run id: %w", err)
		}
	}

	log.Info("bulk generation started",
		zap.String("runId", checkpoint.RunID),
		zap.String("gender", string(gender)),
		zap.String("style", style),
		zap.Int("count", req.Count),
		zap.Int("resumeFrom", checkpoint.ProcessedRows))

	bar := newProgressBar(req.Progress, req.Count)
	if bar != nil {
		_ = bar.Set(checkpoint.ProcessedRows)
	}

	result := Result{RunID: checkpoint.RunID, Total: req.Count, OutputFile: req.OutputFile}
	for checkpoint.ProcessedRows < req.Count {
		if err := ctx.Err(); err != nil {
			log.Warn("bulk generation interrupted",
				zap.String("runId", checkpoint.RunID),
				zap.Int("processedRows", checkpoint.ProcessedRows))
			return result, err
		}

		size := req.BatchSize
		if remaining := req.Count - checkpoint.ProcessedRows; remaining < size {
			size = remaining
		}

		batch, err := composeBatch(composer, gender, style, size)
		if err != nil {
			return result, fmt.Errorf("error composing batch: %w", err)
		}

		if err := writeResultsFile(batch, checkpoint.RunID, gender, style, req.OutputFile, outputFileExists); err != nil {
			return result, fmt.Errorf("error writing results: %w", err)
		}
		outputFileExists = true

		checkpoint.ProcessedRows += len(batch)
		result.Generated += len(batch)
		if err := saveCheckpoint(req.CheckpointFile, checkpoint); err != nil {
			return result, fmt.Errorf("error saving checkpoint: %w", err)
		}

		if bar != nil {
			_ = bar.Add(len(batch))
		}
		log.Debug("batch written",
			zap.String("runId", checkpoint.RunID),
			zap.Int("processedRows", checkpoint.ProcessedRows))
	}

	if err := os.Remove(req.CheckpointFile); err != nil && !os.IsNotExist(err) {
		return result, fmt.Errorf("error removing checkpoint: %w", err)
	}
	log.Info("bulk generation finished",
		zap.String("runId", checkpoint.RunID),
		zap.Int("generated", result.Generated),
		zap.String("output", req.OutputFile))

	return result, nil
}

func composeBatch(composer *namegen.Composer, gender namegen.Gender, style string, size int) ([]namegen.GeneratedName, error) {
	batch := make([]namegen.GeneratedName, 0, size)
	for i := 0; i < size; i++ {
		name, err := composer.Compose(gender, style)
		if err != nil {
			return nil, err
		}
		batch = append(batch, name)
	}
	return batch, nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("generating names"),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
}

func writeResultsFile(names []namegen.GeneratedName, runID string, gender namegen.Gender, style, filePath string, append bool) error {
	flag := os.O_CREATE | os.O_WRONLY
	if append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}

	file, err := os.OpenFile(filePath, flag, 0644)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if !append {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}

	for _, name := range names {
		row := []string{
			runID, string(gender), style,
			name.Kanji, name.Romaji, name.Pronunciation, name.Meaning,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// matches reports whether a saved checkpoint can be continued by a request.
func (c Checkpoint) matches(gender namegen.Gender, style string, count int) error {
	if c.Gender != gender || c.Style != style || c.Count != count {
		return fmt.Errorf("%w: saved %s/%s/%d, requested %s/%s/%d",
			ErrCheckpointMismatch, c.Gender, c.Style, c.Count, gender, style, count)
	}
	if c.ProcessedRows > count {
		return fmt.Errorf("%w: %d rows already written, %d requested",
			ErrCheckpointMismatch, c.ProcessedRows, count)
	}
	return nil
}

func loadCheckpoint(path string) (Checkpoint, error) {
	var checkpoint Checkpoint
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return checkpoint, nil
	}
	if err != nil {
		return checkpoint, err
	}
	defer file.Close()

	err = json.NewDecoder(file).Decode(&checkpoint)
	return checkpoint, err
}

func saveCheckpoint(path string, checkpoint Checkpoint) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(checkpoint)
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}
