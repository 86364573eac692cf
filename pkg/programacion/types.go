package programacion

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawEvent is one schedule record as served by the programaciones API.
type RawEvent struct {
	Sede              string     `json:"sede_procaptall"`
	Descripcion       string     `json:"descripcion_procaptall"`
	Ambiente          string     `json:"ambiente_procaptall"`
	Fecha             string     `json:"fecha_procaptall"`
	HoraInicio        string     `json:"horaInicio_procaptall"`
	HoraFin           string     `json:"horaFin_procaptall"`
	NumeroFicha       FlexString `json:"numero_FichaFK"`
	NombreTaller      string     `json:"nombre_Taller"`
	NombreCapacitador string     `json:"nombre_Capacitador"`
}

// Entry is a keyed event inside a Wrapper.
type Entry struct {
	Key   string
	Event RawEvent
}

// Wrapper is one element of the API response: an object whose values are events.
// Entries keep the order in which the keys appear in the payload.
type Wrapper struct {
	Entries []Entry
}

// Events returns the wrapper's events in payload order.
func (w Wrapper) Events() []RawEvent {
	out := make([]RawEvent, len(w.Entries))
	for i, e := range w.Entries {
		out[i] = e.Event
	}
	return out
}

// FlexString decodes a JSON string or number into its textual form.
// The API serves numero_FichaFK as either.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler for FlexString.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("numero_FichaFK: expected string or number, got %s", string(data))
	}
	*f = FlexString(n.String())
	return nil
}

// Config configures a Client.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     string  // Go duration, e.g. "10s"
	RatePerSec  float64 // <= 0 disables the limiter
	Burst       int
}
