package middleware

import (
	"hr-directory/internal/directory"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionUserKey     = "user_id"
	SessionInstanceKey = "directory_instance"
	sessionCtxKey      = "DirectorySession"
)

// InjectSession gives every request its own directory session, resumed from
// the identity stored in the signed cookie. Cookies issued by another
// directory instance (e.g. before a restart) are cleared, since the same ID
// may now belong to someone else.
func InjectSession(dir *directory.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := dir.NewSession()
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserKey).(int); ok {
			instance, _ := sess.Get(SessionInstanceKey).(string)
			if err := s.Resume(instance, uid); err != nil {
				sess.Clear()
				_ = sess.Save()
			}
		}

		c.Set(sessionCtxKey, s)
		c.Next()
	}
}

// DirectorySession returns the session set up by InjectSession.
func DirectorySession(c *gin.Context) *directory.Session {
	return c.MustGet(sessionCtxKey).(*directory.Session)
}
