package web

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"io"
	"net/http"
	ownIo "sqltok/io"
	"sqltok/lexer"
	"sqltok/util"
)

const (
	maxQueryBytes           = 1 << 20
	maxLengthOfPrintedQuery = 10000
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details error  `json:"details"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: err,
	}
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

func StartServer(port string) {
	r := initRouter()
	sigolo.Infof("Start server without TLS support on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func StartServerTls(port string, certFile string, keyFile string) {
	r := initRouter()
	sigolo.Infof("Start server with TLS support on port %s", port)
	err := http.ListenAndServeTLS(":"+port, certFile, keyFile, r)
	sigolo.FatalCheck(err)
}

func initRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/tokenize", handleTokenize).Methods(http.MethodPost)
	r.HandleFunc("/keywords", handleKeywords).Methods(http.MethodGet)
	return r
}

func handleTokenize(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")
	writer.Header().Set("Content-Type", "application/json")

	queryBytes, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, maxQueryBytes))
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			sigolo.Errorf("Body of request to '/tokenize' exceeds %d bytes", maxBytesError.Limit)
			writeErrorResponse(writer, http.StatusRequestEntityTooLarge, fmt.Sprintf("Query exceeds %d bytes.", maxBytesError.Limit), nil)
			return
		}

		sigolo.Errorf("Error reading HTTP body of request to '/tokenize': %+v", err)
		writeErrorResponse(writer, http.StatusInternalServerError, "Error reading HTTP body.", nil)
		return
	}

	queryString := string(queryBytes)
	sigolo.Infof("Query:\n%s", util.Truncate(queryString, maxLengthOfPrintedQuery))

	tokens := lexer.New(queryString).ScanAll()
	sigolo.Debugf("Found %d token", len(tokens))

	if request.URL.Query().Get("strict") == "true" {
		err = lexer.CheckIllegal(tokens)
		if err != nil {
			sigolo.Errorf("Error tokenizing query: %s", err.Error())
			writeErrorResponse(writer, http.StatusBadRequest, fmt.Sprintf("Error tokenizing query: %s", err.Error()), err)
			return
		}
	}

	err = ownIo.WriteTokens(writer, tokens, ownIo.FormatJson, false)
	if err != nil {
		sigolo.Errorf("Error writing tokens: %+v", err)
	}
}

func handleKeywords(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")
	writer.Header().Set("Content-Type", "application/json")

	responseBytes, err := json.Marshal(KeywordsResponse{Keywords: lexer.Keywords()})
	if err != nil {
		sigolo.Errorf("Error marshalling keywords: %+v", err)
		writeErrorResponse(writer, http.StatusInternalServerError, "Error creating keyword list.", nil)
		return
	}

	_, err = writer.Write(responseBytes)
	if err != nil {
		sigolo.Errorf("Error writing keywords: %+v", err)
	}
}

func writeErrorResponse(writer http.ResponseWriter, status int, message string, err error) {
	writer.WriteHeader(status)

	errorResponseBytes, err := json.Marshal(NewErrorResponse(message, err))
	if err != nil {
		sigolo.Errorf("Error creating and marshalling error response object: %+v", err)
		return
	}

	_, err = writer.Write(errorResponseBytes)
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}
