package benchchart

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/parser"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/plan"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render"
)

// Result summarizes a generation run.
type Result struct {
	// Input is the data file that was read.
	Input string
	// Blocks is the number of datasets found.
	Blocks int
	// Images lists the written files in order.
	Images []string
	// Skipped lists the titles of charts with nothing to plot.
	Skipped []string
}

// Generate renders every chart of the input file.
// Parse errors abort the run; charts with a degenerate axis are skipped.
func Generate(input string, opts Options) (*Result, error) {
	log := opts.logger()

	table, err := Load(input)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"file": input, "rows": len(table.Rows)}).Info("table loaded")

	blocks, err := parser.ExtractBlocks(table, opts.Schema)
	if err != nil {
		return nil, err
	}

	var backend render.Backend
	if !opts.DryRun {
		backend, err = render.NewBackend(opts.Backend, opts.Layout)
		if err != nil {
			return nil, err
		}
	}
	rc := render.NewContext(backend, render.Settings{
		Dir:    opts.OutputDir,
		Prefix: Prefix(input),
		Pad:    opts.CounterWidth(blocks[0].Schema),
		Styles: models.DefaultStyles(),
		Logger: log,
	})
	defer rc.Close()

	result := &Result{Input: input, Blocks: len(blocks)}
	for _, b := range blocks {
		specs := plan.Build(b)
		log.WithFields(logrus.Fields{
			"dataset": b.Name,
			"schema":  b.Schema,
			"charts":  len(specs),
		}).Info("rendering dataset")

		for _, spec := range specs {
			entry := log.WithFields(logrus.Fields{"dataset": b.Name, "title": spec.Title})

			if opts.DryRun {
				frame, err := rc.Prepare(spec)
				if models.IsDegenerate(err) {
					entry.WithError(err).Warn("skipping chart")
					result.Skipped = append(result.Skipped, spec.Title)
					continue
				}
				if err != nil {
					return result, NewChartError(b.Name, spec.Title, err)
				}
				entry.WithFields(logrus.Fields{"y_max": frame.Scale.Max, "ticks": frame.Scale.Ticks}).Info("planned chart")
				continue
			}

			path, err := rc.Render(spec)
			if models.IsDegenerate(err) {
				entry.WithError(err).Warn("skipping chart")
				result.Skipped = append(result.Skipped, spec.Title)
				continue
			}
			if err != nil {
				return result, NewChartError(b.Name, spec.Title, err)
			}
			result.Images = append(result.Images, path)
		}
	}

	log.WithFields(logrus.Fields{
		"images":  len(result.Images),
		"skipped": len(result.Skipped),
	}).Info("done")
	return result, nil
}
