package model

import "time"

// 量子网络监控为演示接口，数据不落库，结构体仅作序列化用

// swagger:model QuantumCapabilities
type QuantumCapabilities struct {
	QuantumKeyDistribution   bool `json:"quantumKeyDistribution"`
	EntanglementDistribution bool `json:"entanglementDistribution"`
	QuantumMemory            bool `json:"quantumMemory"`
	QuantumTeleportation     bool `json:"quantumTeleportation"`
}

// swagger:model QuantumNode
type QuantumNode struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	NodeType     string              `json:"nodeType"` // QUANTUM_HUB, QUANTUM_NODE
	Status       string              `json:"status"`
	Capabilities QuantumCapabilities `json:"capabilities"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// swagger:model QuantumLink
type QuantumLink struct {
	ID              uint      `json:"id"`
	SourceNodeID    uint      `json:"sourceNodeId"`
	TargetNodeID    uint      `json:"targetNodeId"`
	LinkType        string    `json:"linkType"`
	Status          string    `json:"status"`
	Bandwidth       float64   `json:"bandwidth"` // qubits/s
	Fidelity        float64   `json:"fidelity"`
	RangeKm         int       `json:"rangeKm"`
	EstablishedDate time.Time `json:"establishedDate"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// swagger:model QuantumNetworkState
type QuantumNetworkState struct {
	NodeStatus       string    `json:"nodeStatus"`
	EntanglementRate string    `json:"entanglementRate"`
	AverageFidelity  float64   `json:"averageFidelity"`
	ActiveNodes      int       `json:"activeNodes"`
	ActiveLinks      int       `json:"activeLinks"`
	MeasuredAt       time.Time `json:"measuredAt"`
}
