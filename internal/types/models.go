package types

// RiskRecord is one parsed line of tablero_riesgos.csv. All fields arrive as
// text; numeric coercion happens where a value is consumed.
type RiskRecord struct {
	ConstantValue   string `json:"valor_constante_2024"`
	Department      string `json:"departamento"`
	Municipality    string `json:"municipio"`
	LegalNatureCode string `json:"cod_natujur"`
	FilingYear      string `json:"year_radica"`
	AnnotationCount string `json:"num_anotacion"`
	DynamicsIndex   string `json:"dinamica_inmobiliaria"`
	IsAnomaly       string `json:"es_anomalia"`
	AnomalyScore    string `json:"score_anomalia"`
	AnomalyType     string `json:"tipo_anomalia"`
}

// AnomalyRecord is a display row for the recent-anomalies table.
type AnomalyRecord struct {
	ID           string  `json:"id"`
	City         string  `json:"ciudad"`
	Municipality string  `json:"municipio"`
	Department   string  `json:"departamento"`
	Severity     string  `json:"severidad"`
	Type         string  `json:"tipo"`
	Date         string  `json:"fecha"`
	Value        float64 `json:"valorTransaccion"`
	BuiltArea    float64 `json:"areaConstruida"`
	ReviewStatus string  `json:"estadoRevision"`
}

type YearCount struct {
	Year  string `json:"mes"`
	Count int    `json:"anomalías"`
}

type NamedCount struct {
	Name  string `json:"nombre"`
	Count int    `json:"valor"`
}

type TypeCount struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

type KPIBlock struct {
	TotalProperties string `json:"totalPropiedades"`
	TotalAnomalies  string `json:"totalAnomalias"`
	AnomalyRate     string `json:"tasaAnomalias"`
	MeanReviewTime  string `json:"tiempoMedio"`
}

// DashboardData is the full payload for the executive dashboard.
type DashboardData struct {
	YearlyTrend      []YearCount     `json:"tendenciaMensual"`
	Severity         []NamedCount    `json:"severidad"`
	Anomalies        []AnomalyRecord `json:"anomalías"`
	TopCity          string          `json:"ciudadTop"`
	GeoDistribution  []NamedCount    `json:"distribucionGeografica"`
	TypeDistribution []TypeCount     `json:"distribucionTipo"`
	KPIs             KPIBlock        `json:"kpis"`
	Alert            *AlertCard      `json:"alerta,omitempty"`
}

// AlertCard is a derived call-to-action shown in the dashboard carousel.
type AlertCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// MapPoint is one plotted marker on the risk map.
type MapPoint struct {
	ID           string  `json:"id"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Municipality string  `json:"municipio"`
	Department   string  `json:"departamento"`
	Severity     string  `json:"severity"`
	Type         string  `json:"type"`
	Score        float64 `json:"score"`
	Year         string  `json:"year"`
}

type MapStats struct {
	Total  int `json:"total"`
	High   int `json:"alta"`
	Medium int `json:"media"`
	Low    int `json:"baja"`
}

type MapData struct {
	Points []MapPoint `json:"points"`
	Stats  MapStats   `json:"stats"`
}

type PeriodValue struct {
	Period string `json:"periodo"`
	Value  int    `json:"valor"`
}

// StatisticsData backs the /statistics charts view.
type StatisticsData struct {
	Temporal   []PeriodValue `json:"temporal"`
	ByType     []TypeCount   `json:"tipo"`
	Geographic []NamedCount  `json:"geografico"`
}
