// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteAttachment writes body as a downloadable file with status 200.
//
// extraHeaders are set before the status line, so they reach the client
// together with Content-Type and Content-Disposition.
func WriteAttachment(w http.ResponseWriter, body []byte, fileName, contentType string, extraHeaders map[string]string) (int, error) {
	for k, v := range extraHeaders {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", ContentDisposition(fileName))
	w.WriteHeader(http.StatusOK)

	return w.Write(body)
}

var quotedStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ContentDisposition renders an attachment disposition with a quoted
// filename.
func ContentDisposition(fileName string) string {
	return `attachment; filename="` + quotedStringEscaper.Replace(fileName) + `"`
}
