package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity headers. The frontend resolves login and forwards who is
// acting; this service only distinguishes subjects from staff.
const (
	headerSubjectID  = "X-Subject-ID"
	headerActorRole  = "X-Actor-Role"
	headerActorAdmin = "X-Actor-Admin"

	roleStaff = "staff"

	actorKey = "actor"
)

// actor is the resolved identity of the caller. It is built once per
// request from the forwarded headers; handlers never read role headers
// directly.
type actor struct {
	Staff bool
	Admin bool
}

// resolveActor translates the identity headers into an actor and stores
// it on the request context.
func resolveActor(c *gin.Context) {
	a := actor{
		Staff: c.GetHeader(headerActorRole) == roleStaff,
	}
	if a.Staff {
		a.Admin = c.GetHeader(headerActorAdmin) == "true"
	}
	c.Set(actorKey, a)
	c.Next()
}

func currentActor(c *gin.Context) actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(actor); ok {
			return a
		}
	}
	return actor{}
}

// subjectID extracts the acting subject. Responds 400 and returns false
// when the header is missing.
func subjectID(c *gin.Context) (string, bool) {
	id := c.GetHeader(headerSubjectID)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Subject-ID header is required"})
		return "", false
	}
	return id, true
}

// requireStaff gates the staff review routes on the resolved actor.
func (s *Server) requireStaff(c *gin.Context) {
	if !currentActor(c).Staff {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff role required"})
		return
	}
	c.Next()
}
