// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the wording of the DevConnector API shared by the
// server handlers and the terminal client.
//
// Error responses are JSON objects keyed by what went wrong, for example
// {"postnotfound":"No post found"}. The Key* constants are those keys and
// the Msg* constants their messages. The client matches on keys only.
package app

// Keys of error response bodies.
const (
	KeyEmail           = "email"
	KeyPassword        = "password"
	KeyHandle          = "handle"
	KeyNoProfile       = "noprofile"
	KeyNoPostsFound    = "nopostsfound"
	KeyNoPostFound     = "nopostfound"
	KeyPostNotFound    = "postnotfound"
	KeyNotAuthorized   = "notauthorized"
	KeyAlreadyLiked    = "alreadyliked"
	KeyNotLiked        = "notliked"
	KeyCommentNotExist = "commentnotexists"
	KeyExperience      = "experience"
	KeyEducation       = "education"
	KeyError           = "error"
)

// Messages of error response bodies.
const (
	MsgEmailAlreadyExists  = "Email already exists"
	MsgUserNotFound        = "User not found"
	MsgPasswordIncorrect   = "Password incorrect"
	MsgHandleAlreadyExists = "That handle already exists"
	MsgNoProfileForUser    = "There is no profile for this user"
	MsgNoProfiles          = "There are no profiles"
	MsgProfileExists       = "Profile already exists for this user"
	MsgNoPostsFound        = "No posts found"
	MsgNoPostFoundWithID   = "No post found with that ID"
	MsgNoPostFound         = "No post found"
	MsgPostsWasNotFound    = "Posts was not found"
	MsgUserNotAuthorized   = "User not authorized"
	MsgAlreadyLiked        = "User already liked this post"
	MsgNotLiked            = "You have not liked this post"
	MsgCommentNotExists    = "Comment does not exist"
	MsgExperienceNotFound  = "Experience entry does not exist"
	MsgEducationNotFound   = "Education entry does not exist"
	MsgInvalidJSON         = "Request body is not valid JSON"
	MsgInternalServerError = "Internal server error"
	MsgUnauthorized        = "Unauthorized"
)

// Messages of the /test routes.
const (
	MsgUsersWorks   = "users works"
	MsgProfileWorks = "profile works"
	MsgPostsWorks   = "posts works"
)
