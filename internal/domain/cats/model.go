package cats

// Gender es el sexo registrado del gato.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Vaccinated indica si el gato tiene las vacunas al día.
// @Enum Yes, No
type Vaccinated string

const (
	VaccinatedYes Vaccinated = "Yes"
	VaccinatedNo  Vaccinated = "No"
)

// Cat es un registro del censo. Las claves JSON son las del archivo de datos.
type Cat struct {
	ID string `json:"id"`

	Name   string `json:"name"`
	Age    string `json:"age"` // texto libre, tal como se tipeó
	Gender Gender `json:"gender"`
	Color  string `json:"color"`

	// Linaje: texto libre, no se valida contra otros ids.
	Mother string `json:"mother"`
	Father string `json:"father"`
	Breed  string `json:"breed"`

	Notes      string     `json:"notes"`
	Vaccinated Vaccinated `json:"vaccinated"`
}
