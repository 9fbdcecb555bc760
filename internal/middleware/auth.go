package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := DirectorySession(c).CurrentUser(); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "you must log in to perform this action"})
			return
		}
		c.Next()
	}
}

// RequireAdmin guards routes that expose data outside the directory, such
// as the audit trail.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DirectorySession(c).RequireAdmin(); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

const (
	limiterIdle  = 10 * time.Minute
	limiterSweep = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a token bucket per client IP. Only RemoteAddr is used;
// X-Forwarded-For is client-controlled.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientLimiter)
		lastSweep = time.Now()
	)

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		if now.Sub(lastSweep) > limiterSweep {
			for key, cl := range clients {
				if now.Sub(cl.lastSeen) > limiterIdle {
					delete(clients, key)
				}
			}
			lastSweep = now
		}

		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
			clients[ip] = cl
		}
		cl.lastSeen = now
		return cl.limiter.Allow()
	}

	return func(c *gin.Context) {
		if !allow(clientIP(c.Request)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
		c.Next()
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// SaveIdentity stores the signed-in user and the directory instance that
// authenticated it in the cookie; id nil clears it.
func SaveIdentity(c *gin.Context, id *int) error {
	sess := sessions.Default(c)
	if id == nil {
		sess.Clear()
	} else {
		sess.Set(SessionUserKey, *id)
		sess.Set(SessionInstanceKey, DirectorySession(c).InstanceID())
	}
	return sess.Save()
}
