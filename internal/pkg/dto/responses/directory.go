package responses

type Shifts struct {
	Morning   string `json:"turnomañana,omitempty"`
	Afternoon string `json:"turnotarde,omitempty"`
	Night     string `json:"turnonoche,omitempty"`
}

type Hospital struct {
	ID            string    `json:"_id"`
	Name          string    `json:"hospital"`
	Level         string    `json:"nivel"`
	Phone         string    `json:"telefono"`
	VisitingHours Shifts    `json:"horariosvisita"`
	Services      string    `json:"servicios"`
	Location      []float64 `json:"ubicación"`
}

type Pharmacy struct {
	ID           string    `json:"_id"`
	Name         string    `json:"farmacia"`
	Phone        string    `json:"telefono"`
	OpeningHours Shifts    `json:"horariosatencion"`
	Location     []float64 `json:"ubicación"`
}

type Laboratory struct {
	ID           string    `json:"_id"`
	Name         string    `json:"laboratorio"`
	Phone        string    `json:"telefono"`
	OpeningHours Shifts    `json:"horariosatención"`
	Services     string    `json:"servicios"`
	Location     []float64 `json:"ubicación"`
}

type PhoneLine struct {
	ID          string `json:"_id"`
	Institution string `json:"institucion"`
	Phone       string `json:"telefono"`
}

type Doctor struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Schedule string `json:"horarios"`
	Online   bool   `json:"aceptacion"`
}

type Announcement struct {
	ID    string `json:"_id"`
	Text  string `json:"comunicado"`
	Image string `json:"imagen"`
}
