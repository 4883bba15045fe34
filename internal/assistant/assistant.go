package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/SalesMasterPro/sales-api/internal/models"
)

// Mensagens fixas de degradação. O assistente é sempre melhor-esforço:
// nenhuma falha aqui vira erro para o chamador.
const (
	MsgRouteNoKey    = "Assistente de IA indisponível (Chave de API ausente)."
	MsgNeedAddresses = "Adicione mais endereços para calcular a rota."
	MsgRouteError    = "Erro ao conectar com a IA."
	MsgRouteEmpty    = "Não foi possível otimizar a rota."

	MsgChatNoKey = "O Chat de IA requer uma API Key configurada."
	MsgChatError = "Erro na comunicação com a IA."
	MsgChatEmpty = "Sem resposta."
)

// Snapshot é o contexto estruturado embutido no prompt do chat.
type Snapshot struct {
	Clients      []models.Client
	Appointments []models.Appointment
}

// Assistant é um adaptador sem estado: uma chamada, uma resposta, sem
// retry. gen nulo significa serviço não configurado.
type Assistant struct {
	gen Generator
	log *zap.Logger
}

func New(gen Generator, log *zap.Logger) *Assistant {
	return &Assistant{gen: gen, log: log}
}

func (a *Assistant) Chat(ctx context.Context, message string, snap Snapshot) string {
	if a.gen == nil {
		return MsgChatNoKey
	}

	prompt := fmt.Sprintf(`Você é o "Sales Copilot". Dados atuais:
- Clientes: %d
- Agenda: %d

Pergunta: %s`, len(snap.Clients), len(snap.Appointments), message)

	text, err := a.gen.GenerateText(ctx, prompt)
	if err != nil {
		a.log.Warn("assistant chat failed", zap.Error(err))
		return MsgChatError
	}
	if text == "" {
		return MsgChatEmpty
	}
	return text
}

// OptimizeRoute exige ao menos 2 endereços; abaixo disso responde a
// mensagem fixa sem chamar o serviço externo.
func (a *Assistant) OptimizeRoute(ctx context.Context, addresses []string) string {
	if a.gen == nil {
		return MsgRouteNoKey
	}
	if len(addresses) < 2 {
		return MsgNeedAddresses
	}

	prompt := fmt.Sprintf(`Como um assistente de logística para representantes comerciais, analise estes endereços e sugira a melhor ordem de visita para minimizar o tempo de deslocamento.
Endereços:
%s

Responda em formato Markdown.`, strings.Join(addresses, "\n"))

	text, err := a.gen.GenerateText(ctx, prompt)
	if err != nil {
		a.log.Warn("route optimization failed", zap.Error(err))
		return MsgRouteError
	}
	if text == "" {
		return MsgRouteEmpty
	}
	return text
}
