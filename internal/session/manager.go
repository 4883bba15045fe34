package session

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SalesMasterPro/sales-api/internal/models"
)

var (
	// ErrInvalidCredentials não distingue usuário errado de senha errada.
	ErrInvalidCredentials = errors.New("session: invalid credentials")
	ErrAccountDisabled    = errors.New("session: account disabled")
	ErrNoSession          = errors.New("session: no active session")
)

// Manager guarda as sessões ativas em memória. Sem segredo configurado,
// um segredo aleatório é gerado por processo: reiniciar o serviço
// derruba todas as sessões, o equivalente ao sessionStorage por aba.
type Manager struct {
	dir    Directory
	secret []byte
	ttl    time.Duration
	log    *zap.Logger

	mu     sync.Mutex
	active map[string]models.User // jti -> usuário (sem credencial)
}

func NewManager(dir Directory, secret string, ttl time.Duration, log *zap.Logger) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		rand.Read(key)
	}

	return &Manager{
		dir:    dir,
		secret: key,
		ttl:    ttl,
		log:    log,
		active: make(map[string]models.User),
	}
}

// Authenticate confere usuário e senha contra o diretório estático.
// No sucesso retorna o usuário já sem a credencial e o token da sessão.
func (m *Manager) Authenticate(username, password string) (models.User, string, error) {
	var matched *Credential
	for i := range m.dir {
		if m.dir[i].Username == username && credentialMatches(m.dir[i].Password, password) {
			matched = &m.dir[i]
			break
		}
	}

	if matched == nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	if !matched.IsActive {
		return models.User{}, "", ErrAccountDisabled
	}

	user := models.User{
		ID:       matched.ID,
		Username: matched.Username,
		Name:     matched.Name,
		IsActive: true,
	}

	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"name":     user.Name,
		"jti":      jti,
		"exp":      time.Now().Add(m.ttl).Unix(),
		"iat":      time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return models.User{}, "", err
	}

	m.mu.Lock()
	m.active[jti] = user
	m.mu.Unlock()

	m.log.Info("session opened", zap.String("user", user.Username))
	return user, token, nil
}

// Lookup resolve o dono atual a partir do token. Tokens expirados,
// inválidos ou já encerrados resultam em ErrNoSession.
func (m *Manager) Lookup(token string) (models.User, error) {
	jti, err := m.parseJTI(token, false)
	if err != nil {
		return models.User{}, ErrNoSession
	}

	m.mu.Lock()
	user, ok := m.active[jti]
	m.mu.Unlock()

	if !ok {
		return models.User{}, ErrNoSession
	}
	return user, nil
}

// End encerra a sessão do token. Depois disso nenhum dado de entidade
// fica endereçável por ele. Encerrar sessão inexistente é no-op.
func (m *Manager) End(token string) {
	jti, err := m.parseJTI(token, true)
	if err != nil {
		return
	}

	m.mu.Lock()
	delete(m.active, jti)
	m.mu.Unlock()
}

func (m *Manager) parseJTI(token string, allowExpired bool) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return "", ErrNoSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return "", ErrNoSession
	}
	return jti, nil
}

func credentialMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
