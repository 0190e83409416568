package content

// Link is an internal navigation target with its label.
type Link struct {
	Text string `json:"text"`
	To   string `json:"to"`
}

// Hero is the banner at the top of most pages.
type Hero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// CTA is the closing call-to-action block.
type CTA struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	LinkText    string `json:"linkText,omitempty"`
	LinkTo      string `json:"linkTo,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Item is a titled paragraph, optionally illustrated.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Member is one person on the team grid.
type Member struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
	Image string `json:"image,omitempty"`
}

// Header is the shared site header copy.
type Header struct {
	LogoAlt          string `json:"logoAlt"`
	Nav              []Link `json:"nav"`
	LanguageSelector struct {
		Heading             string `json:"heading"`
		ChangeLanguageLabel string `json:"changeLanguageLabel"`
	} `json:"languageSelector"`
}

// FooterLink is one entry of a footer column.
type FooterLink struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Footer is the shared site footer copy.
type Footer struct {
	Brand struct {
		NameAlt string `json:"nameAlt"`
		Slogan  string `json:"slogan"`
	} `json:"brand"`
	Address  []string `json:"address"`
	Phone    string   `json:"phone"`
	Sections []struct {
		Title string       `json:"title"`
		Links []FooterLink `json:"links"`
	} `json:"sections"`
	Social struct {
		Links []struct {
			Name string `json:"name"`
			Link string `json:"link"`
		} `json:"links"`
	} `json:"social"`
	Copyright struct {
		Text    string `json:"text"`
		Privacy string `json:"privacy"`
		Cookies string `json:"cookies"`
		Terms   string `json:"terms"`
	} `json:"copyright"`
}

// Showcase is one of the alternating feature rows on the home page.
type Showcase struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TickItems   []string `json:"tickItems"`
	Link        Link     `json:"link"`
}

// Home holds the thirteen stacked sections of the landing page.
type Home struct {
	Page1 struct {
		Title  string `json:"title"`
		Slogan string `json:"slogan"`
		Links  []Link `json:"links"`
	} `json:"page1"`
	Page2 struct {
		Title          string `json:"title"`
		VideoThumbnail string `json:"videoThumbnail"`
		VideoURL       string `json:"videoUrl"`
	} `json:"page2"`
	Page3 struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"page3"`
	Page4  Showcase `json:"page4"`
	Page5  Showcase `json:"page5"`
	Page6  Showcase `json:"page6"`
	Page7  Showcase `json:"page7"`
	Page8  Showcase `json:"page8"`
	Page9  Showcase `json:"page9"`
	Page10 struct {
		Title string `json:"title"`
		Stats []struct {
			Number string `json:"number"`
			Label  string `json:"label"`
		} `json:"stats"`
	} `json:"page10"`
	Page11 struct {
		Title string `json:"title"`
		Cards []Item `json:"cards"`
	} `json:"page11"`
	Page12 struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        Link   `json:"link"`
	} `json:"page12"`
	Page13 struct {
		Title string `json:"title"`
		Link  Link   `json:"link"`
	} `json:"page13"`
}

// Showcases returns sections 4 through 9 in page order.
func (h Home) Showcases() []Showcase {
	return []Showcase{h.Page4, h.Page5, h.Page6, h.Page7, h.Page8, h.Page9}
}

// About is the studio introduction page.
type About struct {
	Hero Hero `json:"hero"`
	Team struct {
		Title   string   `json:"title"`
		Members []Member `json:"members"`
	} `json:"team"`
	Values struct {
		Items []Item `json:"items"`
	} `json:"values"`
	Additional struct {
		Items []Item `json:"items"`
	} `json:"additional"`
	CTA CTA `json:"cta"`
}

// Services lists what the studio offers.
type Services struct {
	Hero     Hero `json:"hero"`
	Services struct {
		Title string `json:"title"`
		Items []struct {
			ID          int    `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"items"`
	} `json:"services"`
	CTA CTA `json:"cta"`
}

// Post is a blog entry.
type Post struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// Blogs is the blog listing page.
type Blogs struct {
	Hero  Hero `json:"hero"`
	Blogs struct {
		Title string `json:"title"`
		Posts []Post `json:"posts"`
	} `json:"blogs"`
	CTA CTA `json:"cta"`
}

// Release is a press release.
type Release struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// Media is the press page.
type Media struct {
	Hero  Hero `json:"hero"`
	Media struct {
		Title    string    `json:"title"`
		Releases []Release `json:"releases"`
	} `json:"media"`
	CTA CTA `json:"cta"`
}

// Team is the standalone team grid.
type Team struct {
	Team struct {
		Title   string   `json:"title"`
		Members []Member `json:"members"`
	} `json:"team"`
}

// Contact is the contact page and its form labels.
type Contact struct {
	Hero    Hero `json:"hero"`
	Contact struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"contact"`
	Form struct {
		Title  string `json:"title"`
		Fields struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Subject string `json:"subject"`
			Message string `json:"message"`
			Submit  string `json:"submit"`
		} `json:"fields"`
	} `json:"form"`
	CTA CTA `json:"cta"`
}

// Donate is the donation page and its form labels.
type Donate struct {
	Hero     Hero `json:"hero"`
	Donation struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"donation"`
	Form struct {
		Title  string `json:"title"`
		Fields struct {
			Name               string            `json:"name"`
			Email              string            `json:"email"`
			Amount             string            `json:"amount"`
			PaymentMethod      string            `json:"paymentMethod"`
			PaymentPlaceholder string            `json:"paymentPlaceholder"`
			PaymentOptions     map[string]string `json:"paymentOptions"`
			Submit             string            `json:"submit"`
		} `json:"fields"`
	} `json:"form"`
	CTA CTA `json:"cta"`
}

// Privacy is the privacy page.
type Privacy struct {
	Hero   Hero `json:"hero"`
	Values struct {
		Items []Item `json:"items"`
	} `json:"values"`
	Additional struct {
		Items []Item `json:"items"`
	} `json:"additional"`
	CTA CTA `json:"cta"`
}

// Cookies is the cookie policy page.
type Cookies struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	LastUpdated string   `json:"lastUpdated"`
	Content     []string `json:"content"`
	Sections    []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"sections"`
}

// Access is the access and use terms page.
type Access struct {
	Hero   Hero `json:"hero"`
	Access struct {
		Title    string `json:"title"`
		Sections []struct {
			ID          int    `json:"id"`
			Icon        string `json:"icon"`
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"sections"`
	} `json:"access"`
	Usage struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"usage"`
	CTA CTA `json:"cta"`
}

// Step is one numbered instruction card.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// Feature is shared by the optimizer, game maker and poster pages.
type Feature struct {
	Header struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"header"`
	Input struct {
		Title        string   `json:"title"`
		HowToUse     string   `json:"howToUse,omitempty"`
		Instructions []string `json:"instructions,omitempty"`
		Placeholder  string   `json:"placeholder"`
		Button       string   `json:"button"`
		Working      string   `json:"working"`
	} `json:"input"`
	Output struct {
		Title            string   `json:"title"`
		Empty            string   `json:"empty"`
		Copied           string   `json:"copied,omitempty"`
		UsageTitle       string   `json:"usageTitle,omitempty"`
		UsageDescription string   `json:"usageDescription,omitempty"`
		UsageSteps       []string `json:"usageSteps,omitempty"`
	} `json:"output"`
	Section struct {
		Title string `json:"title"`
		Steps []Step `json:"steps"`
	} `json:"section"`
}
