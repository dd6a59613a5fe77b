package main

import (
	"flag"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/benjaminmd/ezplot/config"
	"github.com/benjaminmd/ezplot/dataset"
	"github.com/benjaminmd/ezplot/env"
	"github.com/benjaminmd/ezplot/plot"
	"github.com/benjaminmd/ezplot/server"
	"github.com/rs/zerolog/log"
)

var (
	serve    = flag.Bool("serve", false, "serve the HTTP API instead of rendering files")
	cert     = flag.String("cert", "", "cert file")
	key      = flag.String("key", "", "key file")
	kind     = flag.String("kind", "single", "plot kind: single, dual or stack")
	out      = flag.String("out", "", "output path without extension (defaults to the output dir and the first file name)")
	formats  = flag.String("format", "", "comma separated output formats (defaults to the style formats)")
	columns  = flag.String("columns", "0,1,2", "x,calc,obs column positions")
	style    = flag.String("style", "", "YAML style file (defaults to EZPLOT_STYLE)")
	colorMap = flag.String("colormap", "", "stack only: color curves by -values looked up in this color map")
	values   = flag.String("values", "", "stack only: comma separated value per curve")
)

func parseValues(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	var parsed []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, v)
	}
	return parsed, nil
}

func render(paths []string) error {
	cols, err := dataset.ParseColumns(*columns)
	if err != nil {
		return err
	}
	curves, err := dataset.ReadFiles(paths, cols)
	if err != nil {
		return err
	}

	var figure *plot.Figure
	switch *kind {
	case "single":
		figure, err = plot.BuildSinglePDF(curves[0])
	case "dual":
		figure, err = plot.BuildDualPDF(curves[0])
	case "stack":
		var opts []plot.StackOption
		if *colorMap != "" {
			v, parseErr := parseValues(*values)
			if parseErr != nil {
				return parseErr
			}
			opts = append(opts, plot.WithColorMap(*colorMap, v))
		}
		figure, err = plot.BuildStackedPDF(curves, opts...)
	default:
		log.Fatal().Str("context", "init").Str("kind", *kind).Msg("unknown_plot_kind")
	}
	if err != nil {
		return err
	}

	basePath := *out
	if basePath == "" {
		basePath = filepath.Join(env.OutputDir, dataset.Name(paths[0]))
	}
	var outFormats []string
	if *formats != "" {
		outFormats = strings.Split(*formats, ",")
	}
	return figure.Save(basePath, outFormats...)
}

func main() {
	// parse the flags passed to program
	flag.Parse()

	stylePath := env.StylePath
	if *style != "" {
		stylePath = *style
	}
	if err := config.Load(stylePath); err != nil {
		log.Warn().Str("context", "init").Str("path", stylePath).Err(err).Msg("default_style_used")
	}

	if *serve {
		server.ListenAndServe(*cert, *key) // blocking
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		log.Fatal().Str("context", "init").Msg("no_input_file")
	}
	if *kind != "stack" && len(paths) > 1 {
		log.Warn().Str("context", "init").Str("kind", *kind).Int("files", len(paths)).Msg("extra_files_ignored")
	}
	if err := render(paths); err != nil {
		log.Fatal().Str("context", "render").Err(err).Msg("app_crashed")
	}
}
