package response

import "site-admin/internal/data/entity"

type WebSettingsResponse struct {
	Name             string `json:"name"`
	TitleHome        string `json:"title_home"`
	TitleDashboard   string `json:"title_dashboard"`
	TitleExam        string `json:"title_exam"`
	Footer           string `json:"footer"`
	ContactTelp      string `json:"contact_telp"`
	ContactEmail     string `json:"contact_email"`
	ContactFax       string `json:"contact_fax"`
	ContactAddress   string `json:"contact_address"`
	ContactMaps      string `json:"contact_maps"`
	ContactFacebook  string `json:"contact_facebook"`
	ContactWhatsapp  string `json:"contact_whatsapp"`
	ContactInstagram string `json:"contact_instagram"`
	ContactTwitter   string `json:"contact_twitter"`
	ContactYoutube   string `json:"contact_youtube"`
	LinkUniv         string `json:"link_univ"`
}

func WebSettingsToResponse(s *entity.WebSettings) WebSettingsResponse {
	return WebSettingsResponse{
		Name:             s.Name,
		TitleHome:        s.TitleHome,
		TitleDashboard:   s.TitleDashboard,
		TitleExam:        s.TitleExam,
		Footer:           s.Footer,
		ContactTelp:      s.ContactTelp,
		ContactEmail:     s.ContactEmail,
		ContactFax:       s.ContactFax,
		ContactAddress:   s.ContactAddress,
		ContactMaps:      s.ContactMaps,
		ContactFacebook:  s.ContactFacebook,
		ContactWhatsapp:  s.ContactWhatsapp,
		ContactInstagram: s.ContactInstagram,
		ContactTwitter:   s.ContactTwitter,
		ContactYoutube:   s.ContactYoutube,
		LinkUniv:         s.LinkUniv,
	}
}
