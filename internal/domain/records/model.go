package records

import (
	"bytes"
	"strconv"
	"time"
)

// Record maps to the patients table. The patient id is supplied by the
// client and acts as the primary key; every other column except name is
// optional and stored as NULL when blank.
type Record struct {
	PatientID         string    `db:"patient_id" json:"patient_id"`
	Name              string    `db:"name" json:"name"`
	DOB               *string   `db:"dob" json:"dob"`
	Age               *string   `db:"age" json:"age"`
	ReviewDate        *string   `db:"review_date" json:"review_date"`
	Sex               *string   `db:"sex" json:"sex"`
	Weight            Decimal   `db:"weight" json:"weight"`
	Phone1            *string   `db:"phone1" json:"phone1"`
	Phone2            *string   `db:"phone2" json:"phone2"`
	Location          *string   `db:"location" json:"location"`
	Diagnosis         *string   `db:"diagnosis" json:"diagnosis"`
	SitusLoop         *string   `db:"situs_loop" json:"situs_loop"`
	SystemicVeins     *string   `db:"systemic_veins" json:"systemic_veins"`
	PulmonaryVeins    *string   `db:"pulmonary_veins" json:"pulmonary_veins"`
	Atria             *string   `db:"atria" json:"atria"`
	AtrialSeptum      *string   `db:"atrial_septum" json:"atrial_septum"`
	AVValves          *string   `db:"av_valves" json:"av_valves"`
	Ventricles        *string   `db:"ventricles" json:"ventricles"`
	VentricularSeptum *string   `db:"ventricular_septum" json:"ventricular_septum"`
	OutflowTracts     *string   `db:"outflow_tracts" json:"outflow_tracts"`
	PulmonaryArteries *string   `db:"pulmonary_arteries" json:"pulmonary_arteries"`
	AorticArch        *string   `db:"aortic_arch" json:"aortic_arch"`
	OthersField       *string   `db:"others_field" json:"others_field"`
	Impression        *string   `db:"impression" json:"impression"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Summary is the four-field projection used for listing and name search.
type Summary struct {
	PatientID string  `db:"patient_id" json:"patient_id"`
	Name      string  `db:"name" json:"name"`
	Age       *string `db:"age" json:"age"`
	Location  *string `db:"location" json:"location"`
}

// Decimal is a nullable numeric value that unmarshals from JSON numbers,
// numeric strings, or null. Form-originated payloads send numbers as
// strings, so binding never fails on weight; validation reports bad input
// as a field error instead.
type Decimal struct {
	Raw   string  // original JSON token, "" when absent or null
	Valid bool    // Value holds a parsed number
	Value float64
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	*d = Decimal{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return nil
	}
	d.Raw = s
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		d.Valid = true
		d.Value = v
	}
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(d.Value, 'f', -1, 64)), nil
}

// Ptr returns the parsed value for storage, nil when the field was absent,
// blank, or unparseable.
func (d Decimal) Ptr() *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Value
	return &v
}

// DecimalFrom builds a valid Decimal from a stored numeric value.
func DecimalFrom(v float64) Decimal {
	return Decimal{
		Raw:   strconv.FormatFloat(v, 'f', -1, 64),
		Valid: true,
		Value: v,
	}
}

// TemplateData flattens the record into the closed set of report template
// fields. Every record field is always present as a key, so tokens for
// unset optional fields render as empty strings rather than leaking the
// literal placeholder. Dates are reformatted for display and report_date
// is stamped with the given time.
func (r *Record) TemplateData(now time.Time) map[string]string {
	data := map[string]string{
		"patient_id":         r.PatientID,
		"name":               r.Name,
		"dob":                FormatDisplayDate(deref(r.DOB)),
		"age":                deref(r.Age),
		"review_date":        FormatDisplayDate(deref(r.ReviewDate)),
		"sex":                deref(r.Sex),
		"weight":             "",
		"phone1":             deref(r.Phone1),
		"phone2":             deref(r.Phone2),
		"location":           deref(r.Location),
		"diagnosis":          deref(r.Diagnosis),
		"situs_loop":         deref(r.SitusLoop),
		"systemic_veins":     deref(r.SystemicVeins),
		"pulmonary_veins":    deref(r.PulmonaryVeins),
		"atria":              deref(r.Atria),
		"atrial_septum":      deref(r.AtrialSeptum),
		"av_valves":          deref(r.AVValves),
		"ventricles":         deref(r.Ventricles),
		"ventricular_septum": deref(r.VentricularSeptum),
		"outflow_tracts":     deref(r.OutflowTracts),
		"pulmonary_arteries": deref(r.PulmonaryArteries),
		"aortic_arch":        deref(r.AorticArch),
		"others_field":       deref(r.OthersField),
		"impression":         deref(r.Impression),
		"report_date":        now.Format("02/01/2006"),
	}
	if r.Weight.Valid {
		data["weight"] = strconv.FormatFloat(r.Weight.Value, 'f', -1, 64)
	}
	return data
}

// FormatDisplayDate converts an ISO date (or RFC 3339 timestamp) to the
// DD/MM/YYYY form used on the printed report. Blank or unparseable input
// yields an empty string.
func FormatDisplayDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t, err = time.Parse(time.RFC3339, iso)
		if err != nil {
			return ""
		}
	}
	return t.Format("02/01/2006")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
