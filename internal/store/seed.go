package store

// Seed data used when a record is missing or unreadable. Each function returns a
// fresh slice so callers may modify the result freely.

// DefaultAdminID is the coordinator credited on writes made without a signed-in admin.
const DefaultAdminID = "admin-1"

// Users returns the fixed roster of identities.
func Users() []User {
	return []User{
		{ID: "admin-1", Name: "Dr. Sarah Mitchell", Email: "sarah.mitchell@university.edu", Role: RoleAdmin, Avatar: "SM", Department: "Administration", Title: "Work-Study Coordinator"},
		{ID: "student-1", Name: "Alex Johnson", Email: "alex.johnson@student.edu", Role: RoleStudent, Avatar: "AJ", Department: "Computer Science", GPA: 3.8, Year: "Junior"},
		{ID: "student-2", Name: "Maria Garcia", Email: "maria.garcia@student.edu", Role: RoleStudent, Avatar: "MG", Department: "Business", GPA: 3.6, Year: "Senior"},
		{ID: "student-3", Name: "James Chen", Email: "james.chen@student.edu", Role: RoleStudent, Avatar: "JC", Department: "Engineering", GPA: 3.9, Year: "Sophomore"},
		{ID: "student-4", Name: "Priya Patel", Email: "priya.patel@student.edu", Role: RoleStudent, Avatar: "PP", Department: "Psychology", GPA: 3.7, Year: "Junior"},
	}
}

// Departments lists the departments a job can be posted under.
func Departments() []string {
	return []string{
		"Library Services",
		"Information Technology",
		"Admissions",
		"Sciences",
		"Student Affairs",
		"Recreation & Athletics",
		"Finance",
		"Marketing",
		"Human Resources",
	}
}

// SeedJobs returns the initial job postings.
func SeedJobs() []Job {
	return []Job{
		{
			ID:           "job-1",
			Title:        "Library Research Assistant",
			Description:  "Assist library staff with cataloging, reference services, and helping students navigate digital resources. Ideal for detail-oriented individuals who enjoy academic environments.",
			Department:   "Library Services",
			HourlyRate:   12.5,
			MaxHours:     20,
			PostedDate:   "2026-01-10",
			Status:       JobStatusActive,
			PostedBy:     DefaultAdminID,
			Requirements: "Strong organizational skills, familiarity with research databases",
			Location:     "Main Library, Floor 2",
		},
		{
			ID:           "job-2",
			Title:        "IT Help Desk Technician",
			Description:  "Provide first-level technical support to students and faculty. Troubleshoot hardware and software issues, manage tickets, and document solutions.",
			Department:   "Information Technology",
			HourlyRate:   14.0,
			MaxHours:     25,
			PostedDate:   "2026-01-12",
			Status:       JobStatusActive,
			PostedBy:     DefaultAdminID,
			Requirements: "Basic networking knowledge, Windows/Mac proficiency, customer service skills",
			Location:     "Tech Center, Room 101",
		},
		{
			ID:           "job-3",
			Title:        "Campus Tour Guide",
			Description:  "Lead prospective students and families on engaging campus tours. Share your college experience and highlight key facilities, programs, and student life.",
			Department:   "Admissions",
			HourlyRate:   11.0,
			MaxHours:     15,
			PostedDate:   "2026-01-15",
			Status:       JobStatusActive,
			PostedBy:     DefaultAdminID,
			Requirements: "Excellent communication skills, enthusiasm, knowledge of campus",
			Location:     "Admissions Office",
		},
		{
			ID:           "job-4",
			Title:        "Biology Lab Assistant",
			Description:  "Support faculty and graduate students with lab preparations, equipment maintenance, and safety compliance. Opportunity to gain hands-on research experience.",
			Department:   "Sciences",
			HourlyRate:   13.5,
			MaxHours:     20,
			PostedDate:   "2026-01-18",
			Status:       JobStatusActive,
			PostedBy:     DefaultAdminID,
			Requirements: "Biology coursework (BIO 101+), lab safety certification preferred",
			Location:     "Science Building, Lab 3B",
		},
		{
			ID:           "job-5",
			Title:        "Student Affairs Office Assistant",
			Description:  "Handle administrative tasks including scheduling, filing, data entry and assisting with student events and programs coordination.",
			Department:   "Student Affairs",
			HourlyRate:   11.5,
			MaxHours:     20,
			PostedDate:   "2026-01-20",
			Status:       JobStatusActive,
			PostedBy:     DefaultAdminID,
			Requirements: "Proficiency in MS Office, strong communication, attention to detail",
			Location:     "Student Union, Room 204",
		},
		{
			ID:           "job-6",
			Title:        "Fitness Center Monitor",
			Description:  "Supervise fitness center operations, ensure safe equipment use, assist members, and maintain cleanliness. Free gym membership included.",
			Department:   "Recreation & Athletics",
			HourlyRate:   12.0,
			MaxHours:     20,
			PostedDate:   "2026-01-22",
			Status:       JobStatusActive,
			PostedBy:     DefaultAdminID,
			Requirements: "CPR certification, interest in fitness, responsible and punctual",
			Location:     "Recreation Center",
		},
	}
}

// SeedApplications returns the initial applications.
func SeedApplications() []Application {
	return []Application{
		{ID: "app-1", StudentID: "student-1", JobID: "job-2", Status: ApplicationStatusApproved, AppliedDate: "2026-01-14", CoverNote: "I have strong IT skills and love helping others solve technical problems."},
		{ID: "app-2", StudentID: "student-1", JobID: "job-1", Status: ApplicationStatusPending, AppliedDate: "2026-01-16", CoverNote: "I spend a lot of time in the library and would love to work there."},
		{ID: "app-3", StudentID: "student-2", JobID: "job-3", Status: ApplicationStatusApproved, AppliedDate: "2026-01-17", CoverNote: "I am outgoing and passionate about showcasing our campus to future students."},
		{ID: "app-4", StudentID: "student-2", JobID: "job-5", Status: ApplicationStatusRejected, AppliedDate: "2026-01-19", CoverNote: "I am experienced in administrative tasks from my internship."},
		{ID: "app-5", StudentID: "student-3", JobID: "job-4", Status: ApplicationStatusApproved, AppliedDate: "2026-01-20", CoverNote: "Completed BIO 201 and have lab safety certification. Very interested!"},
		{ID: "app-6", StudentID: "student-4", JobID: "job-6", Status: ApplicationStatusPending, AppliedDate: "2026-01-23", CoverNote: "Certified CPR trainer and fitness enthusiast. Would be a great fit."},
	}
}

// SeedWorkLogs returns the initial work logs.
func SeedWorkLogs() []WorkLog {
	return []WorkLog{
		{ID: "log-1", StudentID: "student-1", JobID: "job-2", Date: "2026-01-20", Hours: 4, Notes: "Resolved 12 help-desk tickets. Set up new laptop configurations for faculty.", Approved: true, SubmittedDate: "2026-01-20"},
		{ID: "log-2", StudentID: "student-1", JobID: "job-2", Date: "2026-01-22", Hours: 5, Notes: "Upgraded systems and provided training to new users.", Approved: true, SubmittedDate: "2026-01-22"},
		{ID: "log-3", StudentID: "student-2", JobID: "job-3", Date: "2026-01-21", Hours: 3, Notes: "Hosted two campus tours for a total of 28 visitors.", Approved: true, SubmittedDate: "2026-01-21"},
		{ID: "log-4", StudentID: "student-3", JobID: "job-4", Date: "2026-01-22", Hours: 6, Notes: "Prepared reagents for genetics lab experiment. Maintained lab cleanliness.", Approved: false, SubmittedDate: "2026-01-22"},
		{ID: "log-5", StudentID: "student-1", JobID: "job-2", Date: "2026-01-25", Hours: 4, Notes: "Network troubleshooting in building C. Installed software updates.", Approved: false, SubmittedDate: "2026-01-25"},
	}
}

// SeedFeedback returns the initial feedback entries.
func SeedFeedback() []Feedback {
	return []Feedback{
		{ID: "fb-1", StudentID: "student-1", JobID: "job-2", AdminID: DefaultAdminID, Rating: 5, Comment: "Alex is an outstanding IT assistant. Tickets are resolved quickly and users appreciate the communication skills. Highly recommend continuing.", Date: "2026-01-28"},
		{ID: "fb-2", StudentID: "student-2", JobID: "job-3", AdminID: DefaultAdminID, Rating: 4, Comment: "Maria does great tours and receives excellent feedback from visitors. Punctual and professional. Minor improvement needed in Q&A handling.", Date: "2026-01-28"},
		{ID: "fb-3", StudentID: "student-3", JobID: "job-4", AdminID: DefaultAdminID, Rating: 5, Comment: "James is meticulous in the lab. Follows all safety protocols and shows genuine curiosity. A future scientist in the making!", Date: "2026-01-29"},
	}
}
