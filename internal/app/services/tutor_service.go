package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/repositories"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/gemini"
)

const (
	chatTemperature     = 0.7
	questionTemperature = 0.8
	historyLimit        = 50
	contextRowLimit     = 5
)

const normalSystemPrompt = `You are a friendly and helpful virtual teacher assistant for a campus management system.
Provide clear, concise answers to student questions.

IMPORTANT: If the user's message includes [Campus Data], use that real data from the campus database to answer their questions accurately.
For example, if they ask about events and you see event data, tell them about those specific events with dates and details.
Always prioritize database information over general knowledge when answering campus-specific questions.`

const practiceSystemPrompt = `You are a practice mode assistant. When asked for practice questions:
- Generate coding problems with clear descriptions
- Create MCQs with 4 options
- Provide subjective questions for deeper understanding
- Include test cases for coding problems
Do NOT reveal answers until the student submits their solution.`

const counselingSystemPromptFmt = `You are a supportive career counselor and mentor for college students.
%s
Provide personalized guidance, motivation, and career advice. Be empathetic and encouraging.
If database information is provided about clubs, faculty, alumni, or resources, use it to give specific recommendations.`

// contextIntent names one bounded category of campus data the tutor may pull
// into a prompt
type contextIntent struct {
	keywords []string
	fetch    func(ctx context.Context, s *TutorService) (string, error)
}

// TutorService handles the AI tutor: chat, practice question generation,
// answer checking and history
type TutorService struct {
	chatRepo      *repositories.ChatRepository
	userRepo      *repositories.UserRepository
	eventRepo     *repositories.EventRepository
	resourceRepo  *repositories.ResourceRepository
	clubRepo      *repositories.ClubRepository
	directoryRepo *repositories.DirectoryRepository
	generator     gemini.Generator
	logger        zerolog.Logger
	intents       []contextIntent
}

// NewTutorService creates a new TutorService
func NewTutorService(
	chatRepo *repositories.ChatRepository,
	userRepo *repositories.UserRepository,
	eventRepo *repositories.EventRepository,
	resourceRepo *repositories.ResourceRepository,
	clubRepo *repositories.ClubRepository,
	directoryRepo *repositories.DirectoryRepository,
	generator gemini.Generator,
	logger zerolog.Logger,
) *TutorService {
	s := &TutorService{
		chatRepo:      chatRepo,
		userRepo:      userRepo,
		eventRepo:     eventRepo,
		resourceRepo:  resourceRepo,
		clubRepo:      clubRepo,
		directoryRepo: directoryRepo,
		generator:     generator,
		logger:        logger,
	}
	s.intents = []contextIntent{
		{keywords: []string{"event", "fest", "workshop"}, fetch: fetchEventContext},
		{keywords: []string{"resource", "notes", "pyq", "syllabus"}, fetch: fetchResourceContext},
		{keywords: []string{"club", "society"}, fetch: fetchClubContext},
		{keywords: []string{"faculty", "professor", "teacher"}, fetch: fetchFacultyContext},
		{keywords: []string{"alumni", "placement"}, fetch: fetchAlumniContext},
	}
	return s
}

func parseMode(raw string) (models.TutorMode, error) {
	switch models.TutorMode(raw) {
	case models.TutorModeNormal, models.TutorModePractice, models.TutorModeCounseling:
		return models.TutorMode(raw), nil
	case "":
		return models.TutorModeNormal, nil
	default:
		return "", apperrors.ErrInvalidTutorMode
	}
}

// Chat sends one message to the tutor and stores the exchange
func (s *TutorService) Chat(ctx context.Context, userID int64, req dto.ChatRequest) (*dto.ChatResponse, error) {
	mode, err := parseMode(req.Mode)
	if err != nil {
		return nil, err
	}

	systemPrompt := normalSystemPrompt
	switch mode {
	case models.TutorModePractice:
		systemPrompt = practiceSystemPrompt
	case models.TutorModeCounseling:
		systemPrompt = fmt.Sprintf(counselingSystemPromptFmt, s.counselingUserInfo(ctx, userID))
	}

	message := req.Message
	if campusData := s.buildCampusContext(ctx, req.Message); campusData != "" {
		message = req.Message + "\n\n[Campus Data]\n" + campusData
	}

	response, err := s.generator.GenerateContent(ctx, gemini.GenerateRequest{
		SystemPrompt: systemPrompt,
		Message:      message,
		Temperature:  chatTemperature,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Tutor generation failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTutorUnavailable, err)
	}

	entry := &models.ChatHistory{
		UserID:   userID,
		Mode:     mode,
		Message:  req.Message,
		Response: response,
	}
	if _, err := s.chatRepo.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist chat exchange")
	}
	if err := s.chatRepo.UpsertPreferences(ctx, userID, mode); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist tutor preferences")
	}

	return &dto.ChatResponse{Response: response, Mode: string(mode)}, nil
}

func (s *TutorService) counselingUserInfo(ctx context.Context, userID int64) string {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ""
	}
	course := "N/A"
	if user.Course != nil {
		course = *user.Course
	}
	year := "N/A"
	if user.Year != nil {
		year = fmt.Sprintf("%d", *user.Year)
	}
	return fmt.Sprintf("Student Info: %s, Course: %s, Year: %s", user.Name, course, year)
}

// buildCampusContext matches the message against the fixed intent table and
// runs the corresponding capped lookups. A lookup failure only loses context.
func (s *TutorService) buildCampusContext(ctx context.Context, message string) string {
	lowered := strings.ToLower(message)

	var blocks []string
	for _, intent := range s.intents {
		matched := false
		for _, keyword := range intent.keywords {
			if strings.Contains(lowered, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		block, err := intent.fetch(ctx, s)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Campus context lookup failed")
			continue
		}
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n")
}

func fetchEventContext(ctx context.Context, s *TutorService) (string, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, e := range events {
		if i == contextRowLimit {
			break
		}
		fmt.Fprintf(&b, "Event: %s on %s", e.Title, e.EventDate.Format("2006-01-02"))
		if e.Venue != nil {
			fmt.Fprintf(&b, " at %s", *e.Venue)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func fetchResourceContext(ctx context.Context, s *TutorService) (string, error) {
	resources, err := s.resourceRepo.List(ctx, dto.ResourceFilter{})
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, r := range resources {
		if i == contextRowLimit {
			break
		}
		fmt.Fprintf(&b, "Resource: %s (%s, %s year %d)\n", r.Title, r.ResourceType, r.Subject, r.Year)
	}
	return b.String(), nil
}

func fetchClubContext(ctx context.Context, s *TutorService) (string, error) {
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, c := range clubs {
		if i == contextRowLimit {
			break
		}
		fmt.Fprintf(&b, "Club: %s (%d members)\n", c.Name, c.MemberCount)
	}
	return b.String(), nil
}

func fetchFacultyContext(ctx context.Context, s *TutorService) (string, error) {
	faculty, err := s.directoryRepo.GetAllFaculty(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, f := range faculty {
		if i == contextRowLimit {
			break
		}
		fmt.Fprintf(&b, "Faculty: %s", f.Name)
		if f.Department != nil {
			fmt.Fprintf(&b, ", %s", *f.Department)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func fetchAlumniContext(ctx context.Context, s *TutorService) (string, error) {
	alumni, err := s.directoryRepo.GetAllAlumni(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, a := range alumni {
		if i == contextRowLimit {
			break
		}
		fmt.Fprintf(&b, "Alumni: %s", a.Name)
		if a.Company != nil {
			fmt.Fprintf(&b, " at %s", *a.Company)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GenerateQuestions asks the model for one structured practice question
func (s *TutorService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	var prompt string
	switch req.QuestionType {
	case "coding":
		prompt = fmt.Sprintf(`Generate a %s level coding question for %s.
Return JSON with: {"question": "description", "test_cases": [{"input": "", "output": ""}], "hints": []}`, difficulty, req.Subject)
	case "mcq":
		prompt = fmt.Sprintf(`Generate a %s level multiple choice question for %s.
Return JSON with: {"question": "question text", "options": ["A", "B", "C", "D"], "correct_answer": "A", "explanation": ""}`, difficulty, req.Subject)
	default:
		prompt = fmt.Sprintf(`Generate a %s level subjective question for %s.
Return JSON with: {"question": "question text", "key_points": [], "sample_answer": ""}`, difficulty, req.Subject)
	}

	raw, err := s.generator.GenerateContent(ctx, gemini.GenerateRequest{
		Message:      prompt,
		Temperature:  questionTemperature,
		JSONResponse: true,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Question generation failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTutorUnavailable, err)
	}

	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("%w: model returned invalid JSON", apperrors.ErrTutorUnavailable)
	}

	return &dto.GenerateQuestionsResponse{
		Subject:      req.Subject,
		QuestionType: req.QuestionType,
		Question:     json.RawMessage(raw),
	}, nil
}

// CheckAnswer asks the model to grade a coding answer against its test cases
func (s *TutorService) CheckAnswer(ctx context.Context, req dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	testCases, err := json.Marshal(req.TestCases)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal test cases: %w", err)
	}

	prompt := fmt.Sprintf(`Question: %s

User's Code:
`+"```"+`
%s
`+"```"+`

Test Cases: %s

Analyze if the code solves the problem correctly. Return JSON with:
{"correct": true/false, "feedback": "detailed feedback", "passed_tests": number, "total_tests": number}`,
		req.Question, req.Code, string(testCases))

	raw, err := s.generator.GenerateContent(ctx, gemini.GenerateRequest{
		Message:      prompt,
		JSONResponse: true,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Answer check failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTutorUnavailable, err)
	}

	var verdict struct {
		Correct     bool   `json:"correct"`
		Feedback    string `json:"feedback"`
		PassedTests int    `json:"passed_tests"`
		TotalTests  int    `json:"total_tests"`
	}
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return nil, fmt.Errorf("%w: model returned invalid JSON", apperrors.ErrTutorUnavailable)
	}

	return &dto.CheckAnswerResponse{
		Correct:     verdict.Correct,
		Feedback:    verdict.Feedback,
		PassedTests: verdict.PassedTests,
		TotalTests:  verdict.TotalTests,
	}, nil
}

// GetHistory retrieves the user's exchanges, newest first, together with the
// mode they last used
func (s *TutorService) GetHistory(ctx context.Context, userID int64, mode *models.TutorMode) ([]*models.ChatHistory, models.TutorMode, error) {
	entries, err := s.chatRepo.GetByUserID(ctx, userID, mode, historyLimit)
	if err != nil {
		return nil, "", err
	}

	var lastMode models.TutorMode
	prefs, err := s.chatRepo.GetPreferences(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to load tutor preferences")
	} else if prefs != nil {
		lastMode = prefs.LastMode
	}

	return entries, lastMode, nil
}
