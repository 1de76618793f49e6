package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/adcworks/adcsetup/internal/setupparam"
)

// calculateRequest is the JSON body for calculate and explain calls: the
// upstream request record plus the operator inputs.
type calculateRequest struct {
	Request  map[string]any `json:"request"`
	Operator map[string]any `json:"operator"`
}

// fieldValue is one computed field in a calculate response.
type fieldValue struct {
	Value   any    `json:"value"`
	Display string `json:"display"`
	Group   string `json:"group"`
	Source  string `json:"source"`
}

type calculateResponse struct {
	SPType string                `json:"sp_type"`
	Values map[string]fieldValue `json:"values"`
}

type typeInfo struct {
	Name      string `json:"name"`
	Supported bool   `json:"supported"`
}

type fieldInfo struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Unit        string   `json:"unit,omitempty"`
	DataType    string   `json:"data_type"`
	Source      string   `json:"source"`
	Group       string   `json:"group"`
	Important   bool     `json:"important,omitempty"`
	Description string   `json:"description,omitempty"`
	DependsOn   []string `json:"depends_on,omitempty"`
	Formula     string   `json:"formula,omitempty"`
}

type errorResponse struct {
	Error       string `json:"error"`
	Unsupported bool   `json:"unsupported_type,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Types()
	out := make([]typeInfo, 0, len(names))
	for _, name := range names {
		out = append(out, typeInfo{Name: name, Supported: s.registry.Supported(name)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	def, ok := s.resolveType(w, r)
	if !ok {
		return
	}
	fields := def.Catalog.Fields()
	out := make([]fieldInfo, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldInfo{
			Key:         f.Key,
			DisplayName: f.DisplayName,
			Unit:        f.Unit,
			DataType:    string(f.DataType),
			Source:      string(f.Source),
			Group:       f.Group,
			Important:   f.Important,
			Description: f.Description,
			DependsOn:   f.DependsOn,
			Formula:     f.FormulaText,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	def, ok := s.resolveType(w, r)
	if !ok {
		return
	}
	res, ok := s.runCalculation(w, r, def)
	if !ok {
		return
	}

	values := make(map[string]fieldValue, def.Catalog.Len())
	for _, item := range res.Items() {
		values[item.Meta.Key] = fieldValue{
			Value:   item.Value.Native(),
			Display: item.Value.Format(),
			Group:   item.Meta.Group,
			Source:  string(item.Meta.Source),
		}
	}
	writeJSON(w, http.StatusOK, calculateResponse{
		SPType: def.Catalog.Name(),
		Values: values,
	})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	def, ok := s.resolveType(w, r)
	if !ok {
		return
	}
	res, ok := s.runCalculation(w, r, def)
	if !ok {
		return
	}

	key := mux.Vars(r)["key"]
	exp, err := setupparam.Explain(res, key)
	if err != nil {
		var unknown *setupparam.UnknownFieldError
		if errors.As(err, &unknown) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*setupparam.Explanation
		Text string `json:"text"`
	}{exp, exp.Render()})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

// resolveType looks up the SP type from the route, answering 404 with an
// explicit unsupported marker for declared-but-inert types.
func (s *Server) resolveType(w http.ResponseWriter, r *http.Request) (setupparam.Definition, bool) {
	name := mux.Vars(r)["type"]
	def, err := s.registry.Resolve(name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Unsupported: true})
		return setupparam.Definition{}, false
	}
	return def, true
}

// runCalculation decodes the body, merges configured operator defaults, and
// runs the SP calculation with metrics around it.
func (s *Server) runCalculation(w http.ResponseWriter, r *http.Request, def setupparam.Definition) (*setupparam.Result, bool) {
	var body calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return nil, false
	}

	spType := def.Catalog.Name()
	operator := s.cfg.MergeOperatorDefaults(spType, body.Operator)

	start := time.Now()
	res, err := def.Calculate(setupparam.Inputs{
		Request:  body.Request,
		Operator: operator,
	})
	s.metrics.CalcDuration.WithLabelValues(spType).Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.CalcTotal.WithLabelValues(spType, "error").Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return nil, false
	}
	s.metrics.CalcTotal.WithLabelValues(spType, "ok").Inc()
	return res, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
