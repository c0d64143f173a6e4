package seed

import (
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/education"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/profile"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/project"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/skill"
)

// Dataset is the demo content written by a first seed.
type Dataset struct {
	Portfolio profile.Portfolio
	Skills    []skill.Skill
	Projects  []project.Project
	Education []education.Education
}

// DefaultDataset returns the demo portfolio of the space-themed site.
func DefaultDataset() Dataset {
	return Dataset{
		Portfolio: profile.Portfolio{PersonalInfo: profile.PersonalInfo{
			Name:     "Faizan Khan",
			Title:    "Java Developer",
			Tagline:  "Exploring the Universe of Code, One Algorithm at a Time",
			Email:    "dsfaizankhan@gmail.com",
			Phone:    "+91-8770120986",
			LinkedIn: "https://www.linkedin.com/in/faizan-khan-1995f/",
			GitHub:   "https://github.com/faizankhan",
			Location: "India",
			Bio: "Dynamic and highly skilled Java Developer with a strong commitment to excellence. " +
				"Proactively seeking challenging roles to apply advanced proficiency in Java, Spring Framework, " +
				"and cutting-edge software development methodologies. Dedicated to delivering top-notch, " +
				"performance-driven solutions.",
			Interests: []string{"Space Exploration", "Astronomy", "Coding", "Problem Solving", "Technology Innovation"},
		}},
		Skills:    defaultSkills(),
		Projects:  defaultProjects(),
		Education: defaultEducation(),
	}
}

func defaultSkills() []skill.Skill {
	s := func(category, name string, level int, categoryType string) skill.Skill {
		return skill.Skill{Category: category, Name: name, Level: level, CategoryType: categoryType}
	}
	return []skill.Skill{
		s(skill.CategoryProgramming, "Java", 90, "Programming Languages"),
		s(skill.CategoryProgramming, "SQL", 85, "Programming Languages"),
		s(skill.CategoryProgramming, "Dot Net", 75, "Programming Languages"),
		s(skill.CategoryProgramming, "JavaScript", 80, "Web Technologies"),
		s(skill.CategoryProgramming, "HTML/CSS", 90, "Web Technologies"),

		s(skill.CategoryFrameworks, "Spring Boot", 90, "Frameworks"),
		s(skill.CategoryFrameworks, "Hibernate", 85, "Frameworks"),
		s(skill.CategoryFrameworks, "RESTful APIs", 88, "Frameworks"),
		s(skill.CategoryFrameworks, "Microservices", 82, "Frameworks"),

		s(skill.CategoryTools, "MySQL", 85, "Database"),
		s(skill.CategoryTools, "Git", 90, "Version Control"),
		s(skill.CategoryTools, "GitHub", 88, "Version Control"),
		s(skill.CategoryTools, "Eclipse", 85, "IDE"),
		s(skill.CategoryTools, "IntelliJ IDEA", 90, "IDE"),
		s(skill.CategoryTools, "Postman", 85, "Testing"),

		s(skill.CategorySoft, "Problem Solving", 95, "Soft Skills"),
		s(skill.CategorySoft, "Communication", 90, "Soft Skills"),
		s(skill.CategorySoft, "Teamwork", 92, "Soft Skills"),
		s(skill.CategorySoft, "Quick Learning", 95, "Soft Skills"),
		s(skill.CategorySoft, "Analytical Thinking", 93, "Soft Skills"),
	}
}

func defaultProjects() []project.Project {
	return []project.Project{
		{
			Title: "E-commerce Nebula Platform",
			Description: "Developed a dynamic E-commerce platform for Namkeen products client, driving business expansion " +
				"across the digital galaxy. Built with modern technologies and space-age performance.",
			Duration:     "61 Days",
			Technologies: []string{"React.js", "Spring Boot", "MySQL", "RESTful APIs", "Microservices"},
			Features: []string{
				"Responsive frontend with React.js",
				"Robust Spring Boot backend",
				"MySQL database optimization",
				"Secure user authentication",
				"RESTful API integration",
				"State management implementation",
			},
			Responsibilities: []string{
				"Backend development with RESTful APIs",
				"Database schema design and optimization",
				"API testing with Postman",
				"Frontend-backend integration",
				"Unit and integration testing",
				"Cross-functional team collaboration",
			},
			LiveDemo: "https://ecommerce-demo.space",
			GitHub:   "https://github.com/faizankhan/ecommerce-platform",
			Image:    "https://images.unsplash.com/photo-1504333638930-c8787321eee0?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Title: "Cosmic Banking System",
			Description: "A futuristic banking application with advanced security features and real-time transaction " +
				"processing, designed for the next generation of financial services.",
			Duration:     "45 Days",
			Technologies: []string{"Java", "Spring Security", "PostgreSQL", "JWT", "Docker"},
			Features: []string{
				"Secure authentication system",
				"Real-time transaction processing",
				"Advanced encryption protocols",
				"RESTful API architecture",
				"Microservices deployment",
			},
			LiveDemo: "https://cosmic-bank.space",
			GitHub:   "https://github.com/faizankhan/cosmic-banking",
			Image:    "https://images.unsplash.com/photo-1537420327992-d6e192287183?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Title: "Stellar Task Manager",
			Description: "A comprehensive project management tool with advanced collaboration features, helping teams " +
				"navigate through complex projects like exploring distant galaxies.",
			Duration:     "38 Days",
			Technologies: []string{"Spring Boot", "React", "MongoDB", "WebSocket", "Redis"},
			Features: []string{
				"Real-time collaboration",
				"Advanced task tracking",
				"Team communication hub",
				"Progress analytics dashboard",
				"Mobile-responsive design",
			},
			LiveDemo: "https://stellar-tasks.space",
			GitHub:   "https://github.com/faizankhan/stellar-tasks",
			Image:    "https://images.unsplash.com/photo-1506703719100-a0f3a48c0f86?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Title: "Galaxy Code Compiler",
			Description: "An online code compilation and execution platform supporting multiple programming languages, " +
				"designed for aspiring space-age developers.",
			Duration:     "28 Days",
			Technologies: []string{"Java", "Docker", "Node.js", "WebSocket", "AWS"},
			Features: []string{
				"Multi-language support",
				"Real-time code execution",
				"Secure sandboxed environment",
				"Performance analytics",
				"Code sharing capabilities",
			},
			LiveDemo: "https://galaxy-compiler.space",
			GitHub:   "https://github.com/faizankhan/galaxy-compiler",
			Image:    "https://images.pexels.com/photos/956981/milky-way-starry-sky-night-sky-star-956981.jpeg",
		},
	}
}

func defaultEducation() []education.Education {
	return []education.Education{
		{
			Degree:      "Diploma in Advanced Computing",
			Institution: "MET CDAC Nashik",
			Board:       "CDAC",
			Stream:      "Advanced Computing",
			Performance: "74%",
			Year:        "2023",
			Description: "Specialized in advanced computing concepts, software development methodologies, and modern programming frameworks.",
			Order:       4,
		},
		{
			Degree:      "Bachelor of Engineering",
			Institution: "Trinity Institute of Technology & Research",
			Board:       "RGPV",
			Stream:      "Civil Engineering",
			Performance: "67.1%",
			Year:        "2018",
			Description: "Developed strong analytical and problem-solving skills through engineering fundamentals and project management.",
			Order:       3,
		},
		{
			Degree:      "12th Grade",
			Institution: "School for Mission Boys H.S SCHOOL",
			Board:       "M.P Board",
			Stream:      "Science/Math",
			Performance: "49.8%",
			Year:        "2014",
			Order:       2,
		},
		{
			Degree:      "10th Grade",
			Institution: "Little Flower Convent School, Seoni M.P",
			Board:       "M.P Board",
			Stream:      "Science/Math",
			Performance: "50.5%",
			Year:        "2011",
			Order:       1,
		},
	}
}
