package model

import "time"

// VoteDirection is the direction of a user's vote on one lesson. The
// zero value means the user currently has no vote recorded.
type VoteDirection string

const (
	NoVote   VoteDirection = ""
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

// UserVote stores the current vote of one user on one lesson. At most
// one row exists per (user, lesson) pair; removing a vote deletes the
// row physically, so no soft-delete column here.
type UserVote struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint          `gorm:"not null;uniqueIndex:idx_user_lesson" json:"userId"`
	LessonID  string        `gorm:"size:64;not null;uniqueIndex:idx_user_lesson" json:"lessonId"`
	Type      VoteDirection `gorm:"type:enum('up','down');not null" json:"type"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (UserVote) TableName() string {
	return "user_votes"
}

// VoteEffect is the outcome of applying one vote action: the resulting
// vote state plus the deltas to apply to the lesson rating aggregate
// and the global total score.
type VoteEffect struct {
	Next     VoteDirection
	Score    int
	Likes    int
	Dislikes int
}

// Transition resolves a vote action against the voter's previous state.
// Clicking the same direction again removes the vote, clicking the
// opposite direction switches it, and a first click adds it.
func Transition(prev, dir VoteDirection) VoteEffect {
	switch {
	case prev == dir:
		// Toggle off: reverse the previous vote.
		if prev == VoteUp {
			return VoteEffect{Next: NoVote, Score: -1, Likes: -1}
		}
		return VoteEffect{Next: NoVote, Score: +1, Dislikes: -1}

	case prev != NoVote:
		// Switch: undo the old direction and apply the new one.
		if dir == VoteUp {
			return VoteEffect{Next: VoteUp, Score: +2, Likes: +1, Dislikes: -1}
		}
		return VoteEffect{Next: VoteDown, Score: -2, Likes: -1, Dislikes: +1}

	default:
		// First vote.
		if dir == VoteUp {
			return VoteEffect{Next: VoteUp, Score: +1, Likes: +1}
		}
		return VoteEffect{Next: VoteDown, Score: -1, Dislikes: +1}
	}
}
