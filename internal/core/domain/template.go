package domain

// Template describes a resume layout in the static catalog. Templates are
// not persisted; the catalog ships with the binary.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PreviewURL  string `json:"preview_url"`
	Category    string `json:"category"`
}

// TemplateCatalog returns the fixed set of resume templates.
func TemplateCatalog() []Template {
	return []Template{
		{ID: "1", Name: "Modern Professional", Description: "Clean and modern design perfect for tech roles", PreviewURL: "https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=400", Category: "professional"},
		{ID: "2", Name: "Creative Designer", Description: "Eye-catching template for creative professionals", PreviewURL: "https://images.unsplash.com/photo-1586281380117-5a60ae2050cc?w=400", Category: "creative"},
		{ID: "3", Name: "Executive", Description: "Elegant template for senior positions", PreviewURL: "https://images.unsplash.com/photo-1586281380923-93a9c3e0a043?w=400", Category: "executive"},
		{ID: "4", Name: "Minimalist", Description: "Simple and clean for any industry", PreviewURL: "https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=400", Category: "minimal"},
		{ID: "5", Name: "Student Friendly", Description: "Perfect for students and fresh graduates", PreviewURL: "https://images.unsplash.com/photo-1586281380117-5a60ae2050cc?w=400", Category: "student"},
		{ID: "6", Name: "Tech Specialist", Description: "Optimized for software engineers", PreviewURL: "https://images.unsplash.com/photo-1586281380923-93a9c3e0a043?w=400", Category: "tech"},
		{ID: "7", Name: "Corporate", Description: "Traditional format for corporate roles", PreviewURL: "https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=400", Category: "corporate"},
		{ID: "8", Name: "Startup Ready", Description: "Dynamic template for startup culture", PreviewURL: "https://images.unsplash.com/photo-1586281380117-5a60ae2050cc?w=400", Category: "startup"},
	}
}
