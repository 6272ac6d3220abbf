package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/urfave/cli/v2"

	"github.com/campustools/coursemap/pkg/blackboard"
	"github.com/campustools/coursemap/pkg/config"
	"github.com/campustools/coursemap/pkg/coursemap"
	"github.com/campustools/coursemap/pkg/export"
	"github.com/campustools/coursemap/pkg/fileutils"
	"github.com/campustools/coursemap/pkg/version"
)

func main() {
	log := logger.New()

	app := &cli.App{
		Name:    "coursemap",
		Usage:   "map a Blackboard course's content layout and export it as TXT, CSV, or HTML",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Usage: "base URL, e.g. https://blackboard.example.edu (or BB_HOST, or config file)"},
			&cli.StringFlag{Name: "key", Usage: "Blackboard REST app key (or BB_KEY, or config file)"},
			&cli.StringFlag{Name: "secret", Usage: "Blackboard REST app secret (or BB_SECRET, or config file)"},
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file, e.g. secrets.toml"},
			&cli.StringFlag{Name: "course-id", Usage: "course id to map (mutually exclusive with --courses-file)"},
			&cli.StringFlag{Name: "courses-file", Usage: "file with one course id per line; # comments allowed"},
			&cli.StringFlag{Name: "out-dir", Value: ".", Usage: "directory for output files"},
			&cli.BoolFlag{Name: "hide-bodies", Usage: "omit raw UltraBody leaf nodes from the output"},
			&cli.IntFlag{Name: "tree-file-limit", Value: 10, Usage: "max files listed per node in tree output"},
			&cli.BoolFlag{Name: "no-tree-truncate", Usage: "list every file per node in tree output"},
			&cli.BoolFlag{Name: "txt", Usage: "write TXT tree output"},
			&cli.BoolFlag{Name: "csv", Usage: "write CSV map output"},
			&cli.BoolFlag{Name: "html", Usage: "write HTML output (default if no output flags given)"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("app run error")
	}
}

func run(c *cli.Context) error {
	log := logger.New()

	creds, err := config.Resolve(c.String("host"), c.String("key"), c.String("secret"), c.String("config"))
	if err != nil {
		return err
	}

	courseIDs, err := resolveCourseIDs(c)
	if err != nil {
		return err
	}

	outDir := c.String("out-dir")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", outDir)
	}

	wantTXT, wantCSV, wantHTML := c.Bool("txt"), c.Bool("csv"), c.Bool("html")
	if !wantTXT && !wantCSV && !wantHTML {
		wantHTML = true
	}

	opts := export.Options{
		ShowBodies: !c.Bool("hide-bodies"),
		FileLimit:  c.Int("tree-file-limit"),
	}
	if c.Bool("no-tree-truncate") {
		opts.FileLimit = 0
	}

	client := blackboard.New(c.Context, creds.Host, creds.Key, creds.Secret,
		time.Duration(creds.TimeoutSeconds)*time.Second)

	exp := &exporter{
		client:   client,
		outDir:   outDir,
		opts:     opts,
		wantTXT:  wantTXT,
		wantCSV:  wantCSV,
		wantHTML: wantHTML,
	}

	// One course failing must not abort the rest of the batch.
	for _, cid := range courseIDs {
		courseLog := log.Root(logger.Data{"course_id": cid})
		if err := exp.export(c.Context, courseLog, cid); err != nil {
			courseLog.Err(err).Error("course export failed")
		}
	}

	return nil
}

// resolveCourseIDs reads the target course ids from --course-id or
// --courses-file. Exactly one of the two must be given.
func resolveCourseIDs(c *cli.Context) ([]string, error) {
	courseID := strings.TrimSpace(c.String("course-id"))
	coursesFile := c.String("courses-file")

	switch {
	case courseID != "" && coursesFile != "":
		return nil, errors.New("--course-id and --courses-file are mutually exclusive")
	case courseID != "":
		return []string{courseID}, nil
	case coursesFile == "":
		return nil, errors.New("one of --course-id or --courses-file is required")
	}

	f, err := os.Open(coursesFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open courses file %s", coursesFile)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(ids) == 0 {
		return nil, errors.Errorf("no course ids found in %s", coursesFile)
	}
	return ids, nil
}

type exporter struct {
	client   *blackboard.Client
	outDir   string
	opts     export.Options
	wantTXT  bool
	wantCSV  bool
	wantHTML bool
}

// export maps one course and writes the selected output formats.
func (e *exporter) export(ctx context.Context, log logger.Logger, courseID string) error {
	records, err := e.client.FetchContents(ctx, courseID)
	if err != nil {
		return err
	}

	idx := coursemap.Index(records)
	roots := coursemap.Roots(records, idx)

	pk1 := e.client.ResolveCoursePK1(ctx, courseID)
	code, name := "", ""
	if pk1 != "" {
		code, name, err = e.client.CourseMeta(ctx, pk1)
		if err != nil {
			// Meta is label-only; keep going without it.
			log.Warn("failed to fetch course meta", logger.Data{"error": err.Error()})
			code, name = "", ""
		}
	}

	course := export.Course{Label: courseLabel(code, name, pk1, courseID), PK1: pk1}
	base := fileutils.Slug(firstNonEmpty(code, pk1, courseID))
	timestamp := time.Now().Format("20060102-150405")

	if e.wantTXT || e.wantCSV {
		tree, rows := export.RenderText(course, roots, idx, e.opts)

		if e.wantTXT {
			path := filepath.Join(e.outDir, fmt.Sprintf("%s_tree_%s.txt", base, timestamp))
			if err := os.WriteFile(path, []byte(tree), 0644); err != nil {
				return errors.Wrapf(err, "failed to write tree file %s", path)
			}
			log.Info("wrote tree", logger.Data{"path": path})
		}

		if e.wantCSV {
			path := filepath.Join(e.outDir, fmt.Sprintf("%s_map_%s.csv", base, timestamp))
			if err := e.writeCSV(path, rows); err != nil {
				return err
			}
			log.Info("wrote map", logger.Data{"path": path, "rows": len(rows)})
		}
	}

	if e.wantHTML {
		doc := export.RenderHTML(course, roots, idx, e.opts)
		path := filepath.Join(e.outDir, fmt.Sprintf("%s_tree_%s.html", base, timestamp))
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return errors.Wrapf(err, "failed to write html file %s", path)
		}
		log.Info("wrote html", logger.Data{"path": path})
	}

	return nil
}

func (e *exporter) writeCSV(path string, rows []export.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create csv file %s", path)
	}

	if err := export.WriteCSV(f, rows); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write csv file %s", path)
	}
	return errors.WithStack(f.Close())
}

// courseLabel builds the display header, preferring "code — name" and
// falling back to the PK1 or the raw id.
func courseLabel(code, name, pk1, courseID string) string {
	var parts []string
	for _, s := range []string{code, name} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " — ")
	}
	return firstNonEmpty(pk1, courseID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
