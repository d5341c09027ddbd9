package certs

import "github.com/svarma-dev/certfolio/internal/models"

// DefaultCertifications is the built-in collection written by the seeder on
// a fresh install. All entries start enabled.
func DefaultCertifications() []models.Certification {
	return []models.Certification{
		{
			ID:           "cert-001",
			Enabled:      true,
			Title:        "Web Developer",
			Organization: "Internshala",
			Year:         "2024",
			Description:  "Completed comprehensive web development training",
		},
		{
			ID:           "cert-002",
			Enabled:      true,
			Title:        "Certificate of Participation",
			Organization: "Naukri Campus AINCAT",
			Year:         "2024",
			Description:  "Successfully participated in competitive aptitude test",
		},
		{
			ID:           "cert-003",
			Enabled:      true,
			Title:        "Internshala Student Partner (ISP)",
			Organization: "Internshala",
			Year:         "2024",
			Description:  "Official joining letter as Internshala Student Partner",
		},
		{
			ID:           "cert-004",
			Enabled:      true,
			Title:        "AWS Solutions Architecture",
			Organization: "Amazon Forage",
			Year:         "2024",
			Description:  "Completed AWS Solutions Architecture virtual experience program",
		},
		{
			ID:           "cert-005",
			Enabled:      true,
			Title:        "MS Office Short Course",
			Organization: "Microsoft Training",
			Year:         "2024",
			Description:  "Excel and PowerPoint proficiency certification",
		},
		{
			ID:           "cert-006",
			Enabled:      true,
			Title:        "Internship Common Aptitude Test (LCAT)",
			Organization: "Internshala",
			Year:         "2024",
			Description:  "Cleared internship common aptitude test",
		},
		{
			ID:           "cert-007",
			Enabled:      true,
			Title:        "Commercial Project Manager",
			Organization: "Siemens Mobility - Forage",
			Year:         "2024",
			Description:  "Completed Commercial Project Manager virtual experience",
		},
		{
			ID:           "cert-008",
			Enabled:      true,
			Title:        "India Typing Skills",
			Organization: "India Typing",
			Year:         "2024",
			Description:  "Verified typing proficiency certificate",
		},
		{
			ID:           "cert-009",
			Enabled:      true,
			Title:        "Web Development Internship",
			Organization: "Octanet Services Pvt Ltd",
			Year:         "2024",
			Description:  "Duration: 2 Months (1st August 2024 - 1st October 2024). Internship certificate for web development training.",
		},
		{
			ID:           "cert-010",
			Enabled:      true,
			Title:        "C Programming",
			Organization: "Infosys",
			Year:         "2024",
			Description:  "Completed C programming training and certification",
		},
		{
			ID:           "cert-011",
			Enabled:      true,
			Title:        "C++ Programming",
			Organization: "Infosys",
			Year:         "2024",
			Description:  "Advanced C++ programming course completion",
		},
		{
			ID:           "cert-012",
			Enabled:      true,
			Title:        "HTML & CSS Fundamentals",
			Organization: "Infosys",
			Year:         "2024",
			Description:  "HTML and CSS basics and practice projects",
		},
		{
			ID:           "cert-013",
			Enabled:      true,
			Title:        "Bootstrap",
			Organization: "Infosys",
			Year:         "2024",
			Description:  "Bootstrap framework training and implementation",
		},
	}
}
