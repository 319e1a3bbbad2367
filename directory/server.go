package directory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/Phponly/Onlyoption/option"
)

// Set a Decoder instance as a package global, because it caches
// meta-data about structs, and an instance can be shared safely.
var decoder = schema.NewDecoder()

// Server exposes a LookupService over HTTP.
type Server struct {
	Service LookupService
}

func handleError(err error, w http.ResponseWriter) {
	if errors.Is(err, ErrProfileNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// lookupQuery mirrors LookupRequest on the wire: optional parameters are
// pointer-typed so that absence survives decoding and can be bridged with
// option.FromPointer.
type lookupQuery struct {
	Username string `schema:"username,required"`
	Verbose  *bool  `schema:"verbose"`
}

// ProfileHandler serves directory lookups from query parameters.
func (s Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	var query lookupQuery

	err := decoder.Decode(&query, r.URL.Query())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	request := LookupRequest{
		Username: query.Username,
		Verbose:  option.FromPointer(query.Verbose),
	}

	response, err := s.Service.Lookup(r.Context(), request)
	if err != nil {
		handleError(err, w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
