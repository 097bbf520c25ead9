package rewards

import (
	"math"

	"github.com/blockseblock/backend/internal/models"
)

// GradeQuiz scores a set of answers, one per question, as a rounded percentage
func GradeQuiz(quiz *models.Quiz, answers []int) (models.QuizGrade, error) {
	if quiz == nil || len(quiz.Questions) == 0 || len(answers) != len(quiz.Questions) {
		return models.QuizGrade{}, models.ErrInvalidAnswers
	}

	grade := models.QuizGrade{
		Total:   len(quiz.Questions),
		Answers: make([]models.QuizAnswer, 0, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		correct := answers[i] == q.CorrectAnswer
		if correct {
			grade.Correct++
		}
		grade.Answers = append(grade.Answers, models.QuizAnswer{
			Question:    q.Question,
			Selected:    answers[i],
			Correct:     correct,
			Explanation: q.Explanation,
		})
	}
	grade.Score = int(math.Round(float64(grade.Correct) / float64(grade.Total) * 100))
	return grade, nil
}
