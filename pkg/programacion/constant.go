package programacion

const (
	pathByFichaAndCoordination = "%s/programaciones/ficha/%s/coordinacion/%s"
	defaultTimeout             = "10s"

	// responseSchema describes the two-level payload: an array of wrapper objects whose
	// values are schedule records.
	responseSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "additionalProperties": {
      "type": "object",
      "required": ["fecha_procaptall", "nombre_Taller"],
      "properties": {
        "fecha_procaptall": {"type": "string", "minLength": 1},
        "nombre_Taller": {"type": "string"},
        "numero_FichaFK": {"type": ["string", "number", "null"]}
      }
    }
  }
}`
)
