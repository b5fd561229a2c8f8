// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// compressMinSize is the smallest body worth gzipping. Shorter bodies are
// sent uncompressed.
const compressMinSize = 1024

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipResponseWriter holds the status and the first compressMinSize bytes
// until it knows whether the body is large enough to compress.
type gzipResponseWriter struct {
	http.ResponseWriter
	status  int
	buf     []byte
	gz      *gzip.Writer
	decided bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.gz != nil {
		return w.gz.Write(b)
	}
	if w.decided {
		return w.ResponseWriter.Write(b)
	}

	w.buf = append(w.buf, b...)
	if len(w.buf) < compressMinSize {
		return len(b), nil
	}
	if err := w.startGzip(); err != nil {
		return 0, err
	}
	return len(b), nil
}

// startGzip commits the headers and flushes the buffer through a pooled
// gzip writer. Bodies the handler already encoded pass through.
func (w *gzipResponseWriter) startGzip() error {
	w.decided = true
	buf := w.buf
	w.buf = nil

	h := w.Header()
	gz, ok := gzipWriterPool.Get().(*gzip.Writer)
	if !ok || h.Get("Content-Encoding") != "" {
		if ok {
			gzipWriterPool.Put(gz)
		}
		w.ResponseWriter.WriteHeader(w.status)
		_, err := w.ResponseWriter.Write(buf)
		return err
	}

	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")
	gz.Reset(w.ResponseWriter)
	w.gz = gz
	w.ResponseWriter.WriteHeader(w.status)
	_, err := gz.Write(buf)
	return err
}

// finish closes the gzip stream, or sends a short buffered body as is.
func (w *gzipResponseWriter) finish() {
	if w.gz != nil {
		_ = w.gz.Close() // best-effort, response already sent
		gzipWriterPool.Put(w.gz)
		w.gz = nil
		return
	}
	if w.decided || w.status == 0 {
		return
	}
	w.decided = true
	w.ResponseWriter.WriteHeader(w.status)
	if len(w.buf) > 0 {
		_, _ = w.ResponseWriter.Write(w.buf)
	}
	w.buf = nil
}

// Compression gzips responses of at least 1KB for clients that accept it.
// HEAD requests pass through untouched.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if r.Method == http.MethodHead || !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(w, r)
			return
		}

		gzw := &gzipResponseWriter{ResponseWriter: w}
		defer gzw.finish()
		next(gzw, r)
	}
}
