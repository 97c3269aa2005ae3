/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package common

import (
	"errors"
	"log"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// NewErrNotFound creates a not-found error for the given identifier.
func NewErrNotFound(elementId string) error {
	return errors.New("404 Not Found: " + elementId)
}

// NewErrBadRequest creates a bad-request error with the given message.
func NewErrBadRequest(message string) error {
	return errors.New("400 Bad Request: " + message)
}

// NewErrConflict creates a conflict error for the given identifier.
func NewErrConflict(elementId string) error {
	return errors.New("409 Conflict: " + elementId)
}

// IsErrNotFound reports whether err is a not-found error.
func IsErrNotFound(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "404 Not Found: ")
}

// IsErrBadRequest reports whether err is a bad-request error.
func IsErrBadRequest(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "400 Bad Request: ")
}

// IsErrConflict reports whether err is a conflict error.
func IsErrConflict(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "409 Conflict: ")
}

// ErrorMessage is the JSON body returned for failed requests.
type ErrorMessage struct {
	Message string `json:"message"`
}

// WriteJSON serializes payload to the response writer with the given
// status code.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteError maps a service error to its HTTP status code and writes a
// JSON error body. Unrecognized errors map to 500 Internal Server Error.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case IsErrNotFound(err):
		WriteJSON(w, http.StatusNotFound, ErrorMessage{Message: err.Error()})
	case IsErrBadRequest(err):
		WriteJSON(w, http.StatusBadRequest, ErrorMessage{Message: err.Error()})
	case IsErrConflict(err):
		WriteJSON(w, http.StatusConflict, ErrorMessage{Message: err.Error()})
	default:
		log.Printf("Internal error: %v", err)
		WriteJSON(w, http.StatusInternalServerError, ErrorMessage{Message: "Internal Server Error"})
	}
}
