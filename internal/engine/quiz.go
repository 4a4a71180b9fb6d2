package engine

import (
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/metrics"
)

// quizCursor tracks the one active knowledge check.
type quizCursor struct {
	quizID   string
	question int
}

// startQuiz opens (or restarts) a quiz at question 0, discarding any prior
// progress on that attempt. Callers hold the lock.
func (s *Session) startQuiz(quizID string) string {
	q, ok := s.content.Quizzes[quizID]
	if !ok {
		s.logger.Warn("Quiz not found: " + quizID)
		return CannotDoThat
	}
	s.quiz = &quizCursor{quizID: quizID}
	s.eventLog.Append(events.GameEvent{
		SessionID: s.ID,
		Type:      events.EventTypeQuizStart,
		TargetID:  quizID,
		GameDay:   s.state.Day,
	})
	return q.Questions[0].Text
}

// AnswerQuiz evaluates one answer. Wrong answers cost nothing and may be
// retried indefinitely; the final correct answer fires the reward and closes
// the quiz. Answering a quiz that is not active restarts it from question 0.
func (s *Session) AnswerQuiz(quizID string, index int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.content.Quizzes[quizID]
	if !ok {
		return s.narrate(CannotDoThat)
	}
	if s.quiz == nil || s.quiz.quizID != quizID {
		s.quiz = &quizCursor{quizID: quizID}
	}

	question := q.Questions[s.quiz.question]
	if index != question.Correct {
		if q.WrongAnswer != "" {
			return s.narrate(q.WrongAnswer)
		}
		return s.narrate("Not quite. Try again.")
	}

	if s.quiz.question < len(q.Questions)-1 {
		s.quiz.question++
		return s.narrate(q.Questions[s.quiz.question].Text)
	}

	// Last correct answer: close the quiz and pay out once.
	s.quiz = nil
	if !s.rewarded[quizID] {
		s.rewarded[quizID] = true
		s.apply(q.Reward)
	}
	metrics.QuizCompletions.Inc()
	s.eventLog.Append(events.GameEvent{
		SessionID: s.ID,
		Type:      events.EventTypeQuizComplete,
		TargetID:  quizID,
		GameDay:   s.state.Day,
	})
	if q.RewardText != "" {
		return s.narrate(q.RewardText)
	}
	return s.narrate("You passed!")
}

// activeQuiz returns the current question view, or nil when no quiz is open.
// Callers hold the lock.
func (s *Session) activeQuiz() *QuizView {
	if s.quiz == nil {
		return nil
	}
	q := s.content.Quizzes[s.quiz.quizID]
	question := q.Questions[s.quiz.question]
	return &QuizView{
		QuizID:   s.quiz.quizID,
		Name:     q.Name,
		Question: question.Text,
		Options:  question.Options,
		Number:   s.quiz.question + 1,
		Total:    len(q.Questions),
	}
}
