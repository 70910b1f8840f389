package entity

// WebSettings is the site-wide configuration record. One row per install.
type WebSettings struct {
	Timestamped
	Name             string `db:"name"`
	TitleHome        string `db:"title_home"`
	TitleDashboard   string `db:"title_dashboard"`
	TitleExam        string `db:"title_exam"`
	Footer           string `db:"footer"`
	ContactTelp      string `db:"contact_telp"`
	ContactEmail     string `db:"contact_email"`
	ContactFax       string `db:"contact_fax"`
	ContactAddress   string `db:"contact_address"`
	ContactMaps      string `db:"contact_maps"`
	ContactFacebook  string `db:"contact_facebook"`
	ContactWhatsapp  string `db:"contact_whatsapp"`
	ContactInstagram string `db:"contact_instagram"`
	ContactTwitter   string `db:"contact_twitter"`
	ContactYoutube   string `db:"contact_youtube"`
	LinkUniv         string `db:"link_univ"`
}
