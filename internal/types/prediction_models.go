// internal/types/prediction_models.go
package types

// --------------------------------------------
// Property input sent to the ML backend
// --------------------------------------------
// Field names mirror the backend's feature schema, so JSON tags keep the
// original column spelling.
type PropertyInput struct {
	Department       string  `json:"DEPARTAMENTO"`
	Municipality     string  `json:"MUNICIPIO"`
	ZoneType         string  `json:"TIPO_PREDIO_ZONA"`
	RuralityCategory string  `json:"CATEGORIA_RURALIDAD"`
	ORIP             string  `json:"ORIP"`
	FolioState       string  `json:"ESTADO_FOLIO"`
	FilingYear       int     `json:"YEAR_RADICA"`
	AnnotationCount  int     `json:"NUM_ANOTACION"`
	DynamicsIndex    float64 `json:"Dinámica_Inmobiliaria"`
	LegalNatureCode  int     `json:"COD_NATUJUR"`
	CountA           int     `json:"COUNT_A"`
	CountDE          int     `json:"COUNT_DE"`
	NewProperties    int     `json:"PREDIOS_NUEVOS"`
	HasMultipleValue int     `json:"TIENE_MAS_DE_UN_VALOR"`
	ConstantValue    float64 `json:"VALOR_CONSTANTE_2024"`
}

// --------------------------------------------
// Price classification result
// --------------------------------------------
type PriceClassification struct {
	PriceRange    string             `json:"rango_precio"` // ALTO | BAJO | MEDIO | LUJO
	Probabilities map[string]float64 `json:"probabilidades"`
}

// --------------------------------------------
// Anomaly detection result
// --------------------------------------------
type AnomalyDetection struct {
	AnomalyDetected bool    `json:"anomalia_detectada"`
	IsNormal        bool    `json:"es_normal"`
	AnomalyScore    float64 `json:"score_anomalia"`
	RawPrediction   int     `json:"prediccion_raw"` // -1 anomaly, 1 normal
}

// --------------------------------------------
// Combined prediction delivered to frontend
// --------------------------------------------
type FullPrediction struct {
	Classification   PriceClassification `json:"clasificacion"`
	AnomalyDetection AnomalyDetection    `json:"deteccion_anomalia"`
	Input            PropertyInput       `json:"predio_input"`
}

// --------------------------------------------
// Assistant chat exchange
// --------------------------------------------
type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
