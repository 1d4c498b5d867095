package models

import "time"

// Event status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Voting session constants
const (
	FirstQuestion = 1
	QuestionCount = 5

	RecentVotesLimit = 50
	DefaultColor     = "#3B82F6"
)

// Request types

type CreateEventRequest struct {
	Name string `json:"name" validate:"required"`
	Date string `json:"date" validate:"required"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type AddModelRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Zero values count as missing, matching the voting client which never
// sends event id 0 or question 0.
type SubmitVoteRequest struct {
	EventID         int64  `json:"eventId" validate:"required"`
	ParticipantName string `json:"participantName" validate:"required"`
	QuestionNumber  int    `json:"questionNumber" validate:"required,min=1,max=5"`
	SelectedModel   string `json:"selectedModel" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type SubmitVoteResponse struct {
	Success bool  `json:"success"`
	VoteID  int64 `json:"voteId"`
}

type CreateEventResponse struct {
	Success bool  `json:"success"`
	EventID int64 `json:"eventId"`
}

type AddModelResponse struct {
	Success bool  `json:"success"`
	ModelID int64 `json:"modelId"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Domain types

type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Model struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// SelectedModel is a snapshot of the model name at vote time, not a
// reference to event_models.
type Vote struct {
	ID              int64     `json:"id"`
	EventID         int64     `json:"event_id"`
	ParticipantName string    `json:"participant_name"`
	QuestionNumber  int       `json:"question_number"`
	SelectedModel   string    `json:"selected_model"`
	Timestamp       time.Time `json:"timestamp"`
}

type RecentVote struct {
	Vote
	EventName string `json:"event_name"`
}

// Stats types

type TotalCount struct {
	Count int `json:"count"`
}

type ModelVotes struct {
	SelectedModel string `json:"selected_model"`
	Votes         int    `json:"votes"`
}

type EventVotes struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date"`
	Votes int    `json:"votes"`
}

type QuestionVotes struct {
	QuestionNumber int `json:"question_number"`
	Votes          int `json:"votes"`
}

// QuestionTally is the vote count of one model for one question.
type QuestionTally struct {
	SelectedModel  string `json:"selected_model"`
	QuestionNumber int    `json:"question_number"`
	Votes          int    `json:"votes"`
}

type QuestionWinner struct {
	QuestionTally
	Rank int `json:"rank"` // 1-indexed within the question
}

type ModelWins struct {
	SelectedModel string `json:"selected_model"`
	QuestionsWon  int    `json:"questions_won"`
}

// Stats is the dashboard payload. Every slice is non-nil; a slice whose
// query failed is empty.
type Stats struct {
	TotalVotes      []TotalCount     `json:"totalVotes"`
	VotesByModel    []ModelVotes     `json:"votesByModel"`
	VotesByEvent    []EventVotes     `json:"votesByEvent"`
	VotesByQuestion []QuestionVotes  `json:"votesByQuestion"`
	RecentVotes     []RecentVote     `json:"recentVotes"`
	QuestionWinners []QuestionWinner `json:"questionWinners"`
	ModelWinCounts  []ModelWins      `json:"modelWinCounts"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
