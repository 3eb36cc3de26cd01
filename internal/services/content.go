package services

import "psaxe.dev/internal/models"

const (
	githubProfile   = "https://github.com/prashantsaxe?tab=overview&from=2024-10-01&to=2024-10-23"
	linkedinProfile = "https://www.linkedin.com/in/prashant-saxena-131473193"
	contactEmail    = "bt22csd018@iiitn.ac.in"
)

// DefaultContent returns the page content. Each call builds fresh slices.
func DefaultContent() models.Content {
	return models.Content{
		Profile: models.Profile{
			Name:     "Prashant Saxena",
			Brand:    "Portfolio",
			Headline: "Full Stack Developer",
			Tagline:  "IIIT Nagpur | Batch 2026",
			Email:    contactEmail,
			Initials: "JD",
			About: []string{
				"I'm a passionate Full Stack Developer currently pursuing my B.Tech at IIIT Nagpur, with a strong foundation in both frontend and backend technologies. I specialize in building scalable and efficient web applications that deliver a seamless user experience. My expertise includes modern JavaScript frameworks like React and TypeScript on the frontend, and Node.js, Express, and RESTful APIs on the backend. With a deep understanding of database technologies such as MongoDB, PostgreSQL, and MySQL, I excel at designing robust, data-driven systems.",
				"As a computer geek, I constantly immerse myself in the tech world, exploring emerging tools and technologies. I'm always experimenting with new frameworks, staying updated on the latest trends in web development, and contributing to open-source projects. I find joy in solving complex problems, optimizing code, and refining performance, turning challenges into opportunities to grow and innovate.",
			},
		},
		Nav: []models.NavItem{
			{Label: "About"},
			{Label: "Skills"},
			{Label: "Projects"},
			{Label: "Contact"},
		},
		Skills: []models.SkillCategory{
			{
				Name:  "Frontend Development",
				Icon:  models.GlyphCode,
				Items: []string{"React", "TypeScript", "Tailwind CSS", "HTML5", "CSS3"},
			},
			{
				Name:  "Backend Development",
				Icon:  models.GlyphServer,
				Items: []string{"Node.js", "Express", "RESTful APIs", "Recoil", "Next.js"},
			},
			{
				Name:  "Databases",
				Icon:  models.GlyphDatabase,
				Items: []string{"MongoDB", "PostgreSQL", "MySQL"},
			},
		},
		Projects: []models.Project{
			{
				Title:       "Ez Pay",
				Description: "Financial application for secure bank transfers and P2P payments with real-time transaction tracking.",
				Tech:        []string{"TypeScript", "Express", "PostgreSQL", "Next.js", "Prisma", "Monorepo"},
				GitHubURL:   "https://github.com/prashantsaxe/Ez_Pay.git",
			},
			{
				Title:       "StreamSage",
				Description: "Platform for tracking movies, TV shows, anime, and dramas with personalized recommendations.",
				Tech:        []string{"React", "Node.js", "MongoDB", "Tailwind CSS", "Express"},
				GitHubURL:   "https://github.com/Rutetid/StreamSage.git",
			},
			{
				Title:       "Library Management System",
				Description: "MERN stack project for managing books, users, and administrative tasks in a library setting.",
				Tech:        []string{"React", "Node.js", "MongoDB", "Tailwind CSS", "Express"},
				GitHubURL:   "https://github.com/prashantsaxe/libarary_management_backend.git",
			},
		},
		Links: models.Links{
			Hero: []models.SocialLink{
				{Icon: models.GlyphGitHub, URL: githubProfile},
				{Icon: models.GlyphLinkedIn, URL: linkedinProfile},
				{Icon: models.GlyphMail, URL: "mailto:" + contactEmail},
			},
			Contact: []models.SocialLink{
				{Icon: models.GlyphGitHub, URL: githubProfile},
				{Icon: models.GlyphLinkedIn, URL: linkedinProfile},
			},
		},
	}
}
