package request

import "strings"

type UpdateWebSettingsRequest struct {
	Name             string `json:"name" validate:"max=255"`
	TitleHome        string `json:"title_home" validate:"max=255"`
	TitleDashboard   string `json:"title_dashboard" validate:"max=255"`
	TitleExam        string `json:"title_exam" validate:"max=255"`
	Footer           string `json:"footer" validate:"max=1000"`
	ContactTelp      string `json:"contact_telp" validate:"max=255"`
	ContactEmail     string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactFax       string `json:"contact_fax" validate:"max=255"`
	ContactAddress   string `json:"contact_address" validate:"max=500"`
	ContactMaps      string `json:"contact_maps" validate:"max=2000"`
	ContactFacebook  string `json:"contact_facebook" validate:"max=255"`
	ContactWhatsapp  string `json:"contact_whatsapp" validate:"max=255"`
	ContactInstagram string `json:"contact_instagram" validate:"max=255"`
	ContactTwitter   string `json:"contact_twitter" validate:"max=255"`
	ContactYoutube   string `json:"contact_youtube" validate:"max=255"`
	LinkUniv         string `json:"link_univ" validate:"omitempty,url,max=255"`

	typeErrors map[string]string
}

// fields maps each JSON key to its string field.
func (r *UpdateWebSettingsRequest) fields() map[string]*string {
	return map[string]*string{
		"name":              &r.Name,
		"title_home":        &r.TitleHome,
		"title_dashboard":   &r.TitleDashboard,
		"title_exam":        &r.TitleExam,
		"footer":            &r.Footer,
		"contact_telp":      &r.ContactTelp,
		"contact_email":     &r.ContactEmail,
		"contact_fax":       &r.ContactFax,
		"contact_address":   &r.ContactAddress,
		"contact_maps":      &r.ContactMaps,
		"contact_facebook":  &r.ContactFacebook,
		"contact_whatsapp":  &r.ContactWhatsapp,
		"contact_instagram": &r.ContactInstagram,
		"contact_twitter":   &r.ContactTwitter,
		"contact_youtube":   &r.ContactYoutube,
		"link_univ":         &r.LinkUniv,
	}
}

// UnmarshalJSON records wrongly typed values in TypeErrors instead of
// rejecting the body.
func (r *UpdateWebSettingsRequest) UnmarshalJSON(data []byte) error {
	d, err := newFieldDecoder(data)
	if err != nil {
		return err
	}

	*r = UpdateWebSettingsRequest{}
	for key, dst := range r.fields() {
		d.decode(key, dst, msgString)
	}
	r.typeErrors = d.errors
	return nil
}

func (r *UpdateWebSettingsRequest) TypeErrors() map[string]string {
	return r.typeErrors
}

func (r *UpdateWebSettingsRequest) Normalize() {
	for _, f := range r.fields() {
		*f = strings.TrimSpace(*f)
	}
}
