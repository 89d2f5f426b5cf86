package cats

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Form son los valores que llegan del formulario de alta/edición.
// No lleva id: en alta se genera y en edición se conserva el original.
type Form struct {
	Name       string
	Age        string
	Gender     string
	Color      string
	Mother     string
	Father     string
	Breed      string
	Notes      string
	Vaccinated string
}

// Normalize recorta todos los campos y pasa a Title Case los de texto libre
// (name, color, mother, father, breed, notes). Age, gender y vaccinated quedan
// como vinieron; gender y vaccinated toman los defaults del formulario si están vacíos.
func (f Form) Normalize() (Cat, error) {
	// cases.Caser no es seguro para uso concurrente, se crea por llamada.
	title := cases.Title(language.Und)
	tc := func(s string) string {
		return title.String(strings.TrimSpace(s))
	}

	gender := Gender(strings.TrimSpace(f.Gender))
	switch gender {
	case "":
		gender = GenderMale
	case GenderMale, GenderFemale:
	default:
		return Cat{}, ErrInvalidInput
	}

	vacc := Vaccinated(strings.TrimSpace(f.Vaccinated))
	switch vacc {
	case "":
		vacc = VaccinatedNo
	case VaccinatedYes, VaccinatedNo:
	default:
		return Cat{}, ErrInvalidInput
	}

	return Cat{
		Name:       tc(f.Name),
		Age:        strings.TrimSpace(f.Age),
		Gender:     gender,
		Color:      tc(f.Color),
		Mother:     tc(f.Mother),
		Father:     tc(f.Father),
		Breed:      tc(f.Breed),
		Notes:      tc(f.Notes),
		Vaccinated: vacc,
	}, nil
}

// FormFrom precarga el formulario con un registro existente (edición).
func FormFrom(c Cat) Form {
	return Form{
		Name:       c.Name,
		Age:        c.Age,
		Gender:     string(c.Gender),
		Color:      c.Color,
		Mother:     c.Mother,
		Father:     c.Father,
		Breed:      c.Breed,
		Notes:      c.Notes,
		Vaccinated: string(c.Vaccinated),
	}
}
