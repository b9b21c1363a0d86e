package memory

import (
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// seed loads the demo dataset used in fallback mode. Demo credentials:
// admin@campus.edu / admin123 and john@campus.edu / student123.
func (s *Store) seed() {
	now := time.Now()

	adminID := uuid.New()
	studentID := uuid.New()

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	studentHash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)

	s.users = []model.User{
		{
			ID:           adminID,
			Name:         "Admin User",
			Email:        "admin@campus.edu",
			PasswordHash: string(adminHash),
			Role:         "admin",
			Department:   strPtr("Administration"),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           studentID,
			Name:         "John Doe",
			Email:        "john@campus.edu",
			PasswordHash: string(studentHash),
			Role:         "student",
			StudentID:    strPtr("CS2021001"),
			Department:   strPtr("Computer Science"),
			Year:         intPtr(3),
			RoomNumber:   strPtr("H-204"),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	s.polls = []model.Poll{
		{
			ID:       uuid.New(),
			Question: "Do you prefer offline exams over online exams?",
			Options: []model.PollOption{
				{Text: "Yes, offline is better", Votes: 45},
				{Text: "No, online is more convenient", Votes: 32},
				{Text: "Both have their advantages", Votes: 18},
			},
			TotalVotes:    95,
			Status:        model.PollStatusActive,
			EndDate:       now.Add(20 * 24 * time.Hour),
			Category:      "Academic",
			CreatedBy:     adminID,
			CreatedByName: "Admin User",
			Voters:        seedVoters(45, 32, 18),
			IsActive:      true,
			CreatedAt:     now.Add(-9 * 24 * time.Hour),
			UpdatedAt:     now,
		},
		{
			ID:       uuid.New(),
			Question: "Which programming language should be added to the curriculum?",
			Options: []model.PollOption{
				{Text: "Python", Votes: 67},
				{Text: "JavaScript", Votes: 43},
				{Text: "Go", Votes: 25},
				{Text: "Rust", Votes: 15},
			},
			TotalVotes:    150,
			Status:        model.PollStatusActive,
			EndDate:       now.Add(25 * 24 * time.Hour),
			Category:      "Academic",
			CreatedBy:     adminID,
			CreatedByName: "CS Department",
			Voters:        seedVoters(67, 43, 25, 15),
			IsActive:      true,
			CreatedAt:     now.Add(-11 * 24 * time.Hour),
			UpdatedAt:     now,
		},
	}

	s.announcements = []model.Announcement{
		{
			ID:         uuid.New(),
			Title:      "Mid-semester exams start August 18",
			Content:    "The detailed schedule has been posted on the notice board and the timetable page.",
			Category:   "Exams",
			Author:     adminID,
			AuthorName: "Admin User",
			Priority:   "high",
			IsActive:   true,
			CreatedAt:  now.Add(-2 * 24 * time.Hour),
			UpdatedAt:  now,
		},
		{
			ID:         uuid.New(),
			Title:      "Hostel water maintenance on Saturday",
			Content:    "Water supply in blocks H and J will be interrupted between 10:00 and 14:00.",
			Category:   "Hostel",
			Author:     adminID,
			AuthorName: "Admin User",
			Priority:   "medium",
			IsActive:   true,
			CreatedAt:  now.Add(-5 * 24 * time.Hour),
			UpdatedAt:  now,
		},
	}

	s.complaints = []model.Complaint{
		{
			ID:              uuid.New(),
			Title:           "Leaking tap in room H-204",
			Description:     "The bathroom tap has been leaking for two days.",
			Category:        "Water",
			Room:            "H-204",
			Status:          model.ComplaintStatusPending,
			Priority:        "medium",
			SubmittedBy:     studentID,
			SubmittedByName: "John Doe",
			CreatedAt:       now.Add(-1 * 24 * time.Hour),
			UpdatedAt:       now,
		},
	}

	s.lostFound = []model.LostFoundItem{
		{
			ID:              uuid.New(),
			Title:           "Black backpack with CS textbooks",
			Description:     "Left in lecture hall B on Tuesday afternoon.",
			Type:            "lost",
			Category:        "Accessories",
			Location:        "Lecture Hall B",
			ContactInfo:     "john@campus.edu",
			SubmittedBy:     studentID,
			SubmittedByName: "John Doe",
			Status:          "active",
			ExpiryDate:      now.Add(30 * 24 * time.Hour),
			CreatedAt:       now.Add(-3 * 24 * time.Hour),
			UpdatedAt:       now,
		},
	}

	s.timetable = []model.TimetableEntry{
		{
			ID:          uuid.New(),
			Subject:     "Operating Systems",
			Instructor:  "Dr. Rao",
			Room:        "CS-101",
			Day:         "Monday",
			StartTime:   "09:00",
			EndTime:     "10:30",
			Department:  "Computer Science",
			Year:        3,
			Semester:    5,
			SubjectCode: "CS301",
			Credits:     4,
			Type:        "lecture",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Subject:     "Databases Lab",
			Instructor:  "Prof. Iyer",
			Room:        "Lab-2",
			Day:         "Wednesday",
			StartTime:   "14:00",
			EndTime:     "16:00",
			Department:  "Computer Science",
			Year:        3,
			Semester:    5,
			SubjectCode: "CS305L",
			Credits:     2,
			Type:        "lab",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	s.skills = []model.Skill{
		{
			ID:                uuid.New(),
			Name:              "John Doe",
			Avatar:            "👨‍💻",
			Rating:            4.5,
			Reviews:           12,
			Skills:            []string{"Python", "Django", "REST APIs"},
			Category:          "Programming",
			Bio:               "Third-year CS student, happy to help with backend projects.",
			HourlyRate:        "Free",
			Location:          "Hostel H",
			Availability:      []string{"Weekends"},
			SessionsCompleted: 8,
			UserID:            studentID,
			UserEmail:         "john@campus.edu",
			IsActive:          true,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	s.techNews = []model.TechNewsItem{
		{
			ID:          uuid.New(),
			Title:       "Go 1.23 released",
			Summary:     "Iterator functions land in the standard library.",
			Content:     "The Go team has released Go 1.23 with range-over-func support...",
			Source:      "go.dev",
			URL:         strPtr("https://go.dev/blog/go1.23"),
			Category:    "Languages",
			Tags:        []string{"go", "release"},
			PublishedAt: now.Add(-7 * 24 * time.Hour),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// seedVoters fabricates one ledger entry per counted vote so seeded
// tallies keep the ledger invariants.
func seedVoters(perOption ...int) []model.Voter {
	voters := []model.Voter{}
	for idx, n := range perOption {
		for i := 0; i < n; i++ {
			voters = append(voters, model.Voter{
				UserID:      uuid.New(),
				OptionIndex: idx,
				VotedAt:     time.Now(),
			})
		}
	}
	return voters
}
