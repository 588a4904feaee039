package service

import (
	"fmt"
	"learning_platform_backend/internal/model"
	"learning_platform_backend/internal/util"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// QuantumNetworkService 量子网络监控演示服务
// 节点与链路保存在内存表中，进程重启即回到种子数据；实时指标每次请求随机生成
type QuantumNetworkService struct {
	mu     sync.Mutex
	nodes  map[uint]model.QuantumNode
	links  map[uint]model.QuantumLink
	nextID uint
	rng    *rand.Rand
}

type QuantumNodeRequest struct {
	Name         string                    `json:"name" binding:"required"`
	Latitude     float64                   `json:"latitude"`
	Longitude    float64                   `json:"longitude"`
	NodeType     string                    `json:"nodeType"`
	Capabilities model.QuantumCapabilities `json:"capabilities"`
}

type UpdateQuantumNodeRequest struct {
	Name         string                     `json:"name"`
	Status       string                     `json:"status"`
	Capabilities *model.QuantumCapabilities `json:"capabilities"`
}

type QuantumTopology struct {
	Nodes       []model.QuantumNode       `json:"nodes"`
	Links       []model.QuantumLink       `json:"links"`
	State       model.QuantumNetworkState `json:"networkState"`
	GeneratedAt time.Time                 `json:"generatedAt"`
}

func NewQuantumNetworkService() *QuantumNetworkService {
	s := &QuantumNetworkService{
		nodes: make(map[uint]model.QuantumNode),
		links: make(map[uint]model.QuantumLink),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.seed()
	return s
}

func (s *QuantumNetworkService) seed() {
	now := time.Now().UTC()
	nodes := []model.QuantumNode{
		{
			ID: 1, Name: "Chattanooga QNet", Latitude: 35.0456, Longitude: -85.3097,
			NodeType: "QUANTUM_HUB", Status: "active",
			Capabilities: model.QuantumCapabilities{
				QuantumKeyDistribution:   true,
				EntanglementDistribution: true,
				QuantumMemory:            true,
			},
			CreatedAt: now.AddDate(0, -6, 0), UpdatedAt: now,
		},
		{
			ID: 2, Name: "Oak Ridge", Latitude: 35.9606, Longitude: -83.9207,
			NodeType: "QUANTUM_NODE", Status: "active",
			Capabilities: model.QuantumCapabilities{
				QuantumKeyDistribution:   true,
				EntanglementDistribution: true,
				QuantumTeleportation:     true,
			},
			CreatedAt: now.AddDate(0, -5, 0), UpdatedAt: now,
		},
		{
			ID: 3, Name: "Atlanta", Latitude: 33.7490, Longitude: -84.3880,
			NodeType: "QUANTUM_NODE", Status: "active",
			Capabilities: model.QuantumCapabilities{
				QuantumKeyDistribution: true,
				QuantumMemory:          true,
			},
			CreatedAt: now.AddDate(0, -4, 0), UpdatedAt: now,
		},
	}
	for _, n := range nodes {
		s.nodes[n.ID] = n
	}

	links := []model.QuantumLink{
		{
			ID: 1, SourceNodeID: 1, TargetNodeID: 2, LinkType: "fiber", Status: "active",
			Bandwidth: 100, Fidelity: 0.98, RangeKm: 100,
			EstablishedDate: now.AddDate(0, -3, 0), UpdatedAt: now,
		},
		{
			ID: 2, SourceNodeID: 1, TargetNodeID: 3, LinkType: "fiber", Status: "active",
			Bandwidth: 100, Fidelity: 0.96, RangeKm: 200,
			EstablishedDate: now.AddDate(0, -2, 0), UpdatedAt: now,
		},
		{
			ID: 3, SourceNodeID: 2, TargetNodeID: 3, LinkType: "satellite", Status: "inactive",
			Bandwidth: 10, Fidelity: 0.85, RangeKm: 500,
			EstablishedDate: now.AddDate(0, -1, 0), UpdatedAt: now,
		},
	}
	for _, l := range links {
		s.links[l.ID] = l
	}

	s.nextID = 1000
}

// ListNodes 按 ID 升序分页返回节点
func (s *QuantumNetworkService) ListNodes(page, limit int) ([]model.QuantumNode, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]model.QuantumNode, 0, len(s.nodes))
	for _, n := range s.nodes {
		all = append(all, n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := len(all)
	start := (page - 1) * limit
	if start >= total {
		return []model.QuantumNode{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total
}

func (s *QuantumNetworkService) GetNode(id uint) (*model.QuantumNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return nil, util.ErrQuantumNodeNotFound
	}
	return &n, nil
}

func (s *QuantumNetworkService) CreateNode(req QuantumNodeRequest) *model.QuantumNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodeType := req.NodeType
	if nodeType == "" {
		nodeType = "QUANTUM_NODE"
	}

	s.nextID++
	now := time.Now().UTC()
	n := model.QuantumNode{
		ID:           s.nextID,
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		NodeType:     nodeType,
		Status:       "active",
		Capabilities: req.Capabilities,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nodes[n.ID] = n
	return &n
}

func (s *QuantumNetworkService) UpdateNode(id uint, req UpdateQuantumNodeRequest) (*model.QuantumNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return nil, util.ErrQuantumNodeNotFound
	}

	if req.Name != "" {
		n.Name = req.Name
	}
	if req.Status != "" {
		n.Status = req.Status
	}
	if req.Capabilities != nil {
		n.Capabilities = *req.Capabilities
	}
	n.UpdatedAt = time.Now().UTC()

	s.nodes[id] = n
	return &n, nil
}

func (s *QuantumNetworkService) DeleteNode(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return util.ErrQuantumNodeNotFound
	}
	delete(s.nodes, id)
	for lid, l := range s.links {
		if l.SourceNodeID == id || l.TargetNodeID == id {
			delete(s.links, lid)
		}
	}
	return nil
}

func (s *QuantumNetworkService) ListLinks() []model.QuantumLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]model.QuantumLink, 0, len(s.links))
	for _, l := range s.links {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// State 聚合当前内存表并叠加每次请求重新采样的指标
func (s *QuantumNetworkService) State() model.QuantumNetworkState {
	s.mu.Lock()
	defer s.mu.Unlock()

	activeNodes := 0
	for _, n := range s.nodes {
		if n.Status == "active" {
			activeNodes++
		}
	}
	activeLinks := 0
	for _, l := range s.links {
		if l.Status == "active" {
			activeLinks++
		}
	}

	status := "active"
	if activeNodes == 0 {
		status = "offline"
	}

	return model.QuantumNetworkState{
		NodeStatus:       status,
		EntanglementRate: fmt.Sprintf("%d pairs/second", 900+s.rng.Intn(200)),
		AverageFidelity:  0.95 + s.rng.Float64()*0.04,
		ActiveNodes:      activeNodes,
		ActiveLinks:      activeLinks,
		MeasuredAt:       time.Now().UTC(),
	}
}

func (s *QuantumNetworkService) Topology() QuantumTopology {
	nodes, _ := s.ListNodes(1, 1000)
	return QuantumTopology{
		Nodes:       nodes,
		Links:       s.ListLinks(),
		State:       s.State(),
		GeneratedAt: time.Now().UTC(),
	}
}
