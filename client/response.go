package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

const htmlMarker = "<!DOCTYPE html>"

var (
	errHTMLResponse = errors.New("Invalid API response format (received HTML)")
	rawMessageType  = reflect.TypeOf(json.RawMessage{})
)

// normalize reads the whole body and folds the response into an Envelope.
func normalize[T any](response *http.Response) *Envelope[T] {
	status := response.StatusCode
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return failure[T](status, err)
	}
	text := string(data)
	if isHTML(text) {
		return failure[T](status, errHTMLResponse)
	}
	ok := isOK(status)
	if ok && text == "[]" {
		return &Envelope[T]{Data: emptySequence[T](), Status: status, Message: messageSuccess, Success: true}
	}
	if !ok {
		var body interface{}
		if text != "" {
			if err = json.Unmarshal(data, &body); err != nil {
				return failure[T](status, err)
			}
		}
		return &Envelope[T]{Status: status, Message: errorMessage(body, response)}
	}
	var value T
	if text != "" {
		if err = json.Unmarshal(data, &value); err != nil {
			return failure[T](status, err)
		}
	}
	return &Envelope[T]{Data: value, Status: status, Message: messageSuccess, Success: true}
}

func failure[T any](status int, err error) *Envelope[T] {
	return &Envelope[T]{Status: status, Message: "Error: " + err.Error()}
}

func networkFailure[T any](err error) *Envelope[T] {
	return &Envelope[T]{Message: "Network error: " + err.Error()}
}

func isHTML(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, htmlMarker)
}

// errorMessage picks body detail, then message, then the status text.
func errorMessage(body interface{}, response *http.Response) string {
	if fields, ok := body.(map[string]interface{}); ok {
		for _, key := range []string{"detail", "message"} {
			if text, ok := asText(fields[key]); ok {
				return text
			}
		}
	}
	return "Error: " + statusText(response)
}

// asText renders a non-empty JSON value as text, structured values are re-encoded.
func asText(value interface{}) (string, bool) {
	switch actual := value.(type) {
	case nil:
		return "", false
	case string:
		return actual, actual != ""
	case bool:
		return strconv.FormatBool(actual), actual
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), actual != 0
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func statusText(response *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(response.Status, strconv.Itoa(response.StatusCode)))
	if text == "" {
		text = http.StatusText(response.StatusCode)
	}
	return text
}

// emptySequence returns an empty, non-nil sequence for slice or interface typed data.
func emptySequence[T any]() T {
	var ret T
	value := reflect.ValueOf(&ret).Elem()
	switch {
	case value.Type() == rawMessageType:
		value.Set(reflect.ValueOf(json.RawMessage("[]")))
	case value.Kind() == reflect.Slice:
		value.Set(reflect.MakeSlice(value.Type(), 0, 0))
	case value.Kind() == reflect.Interface && value.Type().NumMethod() == 0:
		value.Set(reflect.ValueOf([]interface{}{}))
	}
	return ret
}
