package middleware

import (
	"errors"
	"net/http"
	"strings"

	"healthathome/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const (
	RoleAdmin       = "admin"
	RoleLaboratorio = "laboratorio"
	RoleRecepcion   = "recepcion"
	RoleEnfermeria  = "enfermeria"
	RolePaciente    = "paciente"
)

const (
	ContextUserIDKey = "user_id"
	ContextRolesKey  = "user_roles"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
)

// Claims is the token payload issued by the ERP identity service.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Authenticate validates an HS256 bearer token and stores the subject and
// roles on the gin context.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims := &Claims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			if !errors.Is(err, jwt.ErrTokenExpired) {
				log.Warn().Err(err).Str("path", c.FullPath()).Msg("[auth] rejected token")
			}
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextRolesKey, claims.Roles)
		c.Next()
	}
}

// DevAuth grants admin to every request. Used only when AUTH_DISABLED is set.
func DevAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserIDKey, "dev")
		c.Set(ContextRolesKey, []string{RoleAdmin})
		c.Next()
	}
}

// RequireRole lets the request through when the caller has at least one of
// roles. Admin passes every check.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, has := range RolesFromContext(c) {
			if has == RoleAdmin {
				c.Next()
				return
			}
			for _, required := range roles {
				if has == required {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func RolesFromContext(c *gin.Context) []string {
	roles, _ := c.Get(ContextRolesKey)
	r, _ := roles.([]string)
	return r
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
