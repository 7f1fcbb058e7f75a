// Package models defines the user records exchanged with the directory API
// and cached locally for the recent-searches list.
package models

import "time"

// UserRef is a compact reference to another user, as it appears inside
// follower and following lists.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is the summary of a user's post shown on the profile view.
type Post struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}

// User is a user record as returned by the directory API.
//
// ID and Name are required; every other field may be missing on the wire and
// is defaulted by Normalize before anything is displayed or cached.
// CreateTime is carried as an RFC 3339 string end-to-end.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profileImage"`
	Bio          string    `json:"bio"`
	CreateTime   string    `json:"createTime"`
	Followers    []UserRef `json:"followers"`
	Following    []UserRef `json:"following"`
	Posts        []Post    `json:"posts"`
}

// HasFollower reports whether id appears in the user's follower list.
func (u *User) HasFollower(id string) bool {
	if id == "" {
		return false
	}
	for _, f := range u.Followers {
		if f.ID == id {
			return true
		}
	}
	return false
}

// nowFn is a test seam for the create-time default.
var nowFn = time.Now

// NormalizeUser defaults every optional field of a single record:
// empty strings stay empty, nil lists become empty lists, and a missing
// create time is stamped with the current time. The input is not modified.
func NormalizeUser(u User) User {
	if u.CreateTime == "" {
		u.CreateTime = nowFn().UTC().Format(time.RFC3339)
	}
	if u.Followers == nil {
		u.Followers = []UserRef{}
	}
	if u.Following == nil {
		u.Following = []UserRef{}
	}
	if u.Posts == nil {
		u.Posts = []Post{}
	}
	return u
}

// Normalize filters and defaults a raw result list: records missing an ID or
// a name are dropped, the rest are passed through NormalizeUser. The returned
// slice is always non-nil.
func Normalize(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.ID == "" || u.Name == "" {
			continue
		}
		out = append(out, NormalizeUser(u))
	}
	return out
}
