package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/benjaminmd/ezplot/helpers"
	"github.com/benjaminmd/ezplot/plot"
	"github.com/benjaminmd/ezplot/stack"
	"github.com/benjaminmd/ezplot/store"
	"github.com/benjaminmd/ezplot/types"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"eps":  "application/postscript",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

// writeJSON encodes v before any header is sent, a failure becomes a 500
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Str("context", "server").Err(err).Msg("response_encoding_failed")
		buf.Reset()
		json.NewEncoder(&buf).Encode(types.ErrorResponse{Error: err.Error()})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Debug().Str("context", "server").Int("status", status).Err(err).Msg("request_failed")
	writeJSON(w, status, types.ErrorResponse{Error: err.Error()})
}

// writeDecodeError tells an oversized body apart from a malformed one
func writeDecodeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}
	writeError(w, http.StatusBadRequest, err)
}

func decode(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func buildFigure(payload types.RenderPayload) (*plot.Figure, error) {
	curves := types.Curves(payload.Curves)
	switch payload.Kind {
	case "single", "dual":
		if len(curves) != 1 {
			return nil, fmt.Errorf("%s plot needs exactly one curve, got %d", payload.Kind, len(curves))
		}
		if payload.Kind == "single" {
			return plot.BuildSinglePDF(curves[0])
		}
		return plot.BuildDualPDF(curves[0])
	case "stack":
		var opts []plot.StackOption
		if payload.ColorMap != "" {
			opts = append(opts, plot.WithColorMap(payload.ColorMap, payload.Values))
		}
		return plot.BuildStackedPDF(curves, opts...)
	}
	return nil, fmt.Errorf("unknown plot kind %q", payload.Kind)
}

func layoutHandler(w http.ResponseWriter, r *http.Request) {
	var payload types.LayoutPayload
	if err := decode(r, &payload); err != nil {
		writeDecodeError(w, err)
		return
	}
	placements, err := stack.Layout(types.Curves(payload.Curves))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, types.NewLayoutResponse(placements))
}

func renderHandler(webPrefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload types.RenderPayload
		if err := decode(r, &payload); err != nil {
			writeDecodeError(w, err)
			return
		}
		payload.Format = strings.ToLower(payload.Format)
		if payload.Format == "" {
			payload.Format = "png"
		}
		if !helpers.Contains(config.Formats, payload.Format) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("format %q not allowed", payload.Format))
			return
		}

		// building only fails on payload content, encoding on our side
		figure, err := buildFigure(payload)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		var buf bytes.Buffer
		if err := figure.Encode(&buf, payload.Format); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		id := store.Put(store.Render{
			Kind:        payload.Kind,
			Format:      payload.Format,
			ContentType: contentTypes[payload.Format],
			Data:        buf.Bytes(),
		})
		log.Info().Str("context", "server").Str("id", id).Str("kind", payload.Kind).Str("format", payload.Format).Int("bytes", buf.Len()).Msg("figure_rendered")
		writeJSON(w, http.StatusCreated, types.RenderResponse{Id: id, URL: webPrefix + "/plots/" + id})
	}
}

func getPlotHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	render, ok := store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no plot %q", id))
		return
	}
	w.Header().Set("Content-Type", render.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(render.Data)
}

func deletePlotHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !store.Delete(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("no plot %q", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func colorMapsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plot.ColorMapNames())
}
