package handler

import "github.com/Roopikasri/Forum-form/internal/domain"

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// PostDTO is the JSON representation of a post. Posts have no author field;
// authorship is not tracked.
type PostDTO struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Likes   int64  `json:"likes"`
}

func toPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:      p.ID,
		Content: p.Content,
		Likes:   p.Likes,
	}
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}
