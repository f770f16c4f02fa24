package config

import "os"

// SkuConfig names one SKU sample column on a client's raw tab, as an
// offset from the first SKU column.
type SkuConfig struct {
	Name         string
	ColumnOffset int
}

// ClientConfig identifies one client's tabs inside its pod's workbook.
type ClientConfig struct {
	Slug          string
	DisplayName   string
	RawTabName    string
	RollupTabName string
	Token         string
	Skus          []SkuConfig
}

// PodConfig is one pod: a named group of clients sharing a workbook.
type PodConfig struct {
	Slug          string
	DisplayName   string
	PodLeadName   string
	SpreadsheetID string
	Token         string
	Clients       []ClientConfig
}

// Registry is the static pod/client layout. Slugs, tab names and SKU
// column offsets are maintained here by hand; tokens come from the
// environment.
type Registry struct {
	Pods []PodConfig
}

// FindPod returns the pod with the given slug, or nil.
func (r *Registry) FindPod(slug string) *PodConfig {
	for i := range r.Pods {
		if r.Pods[i].Slug == slug {
			return &r.Pods[i]
		}
	}
	return nil
}

// FindClient looks a client up across all pods, returning the client and
// its pod, or nils.
func (r *Registry) FindClient(slug string) (*PodConfig, *ClientConfig) {
	for i := range r.Pods {
		for j := range r.Pods[i].Clients {
			if r.Pods[i].Clients[j].Slug == slug {
				return &r.Pods[i], &r.Pods[i].Clients[j]
			}
		}
	}
	return nil, nil
}

// DefaultRegistry builds the production pod layout.
func DefaultRegistry() *Registry {
	return &Registry{
		Pods: []PodConfig{
			{
				Slug:          "kelly",
				DisplayName:   "Kelly's Pod",
				PodLeadName:   "Kelly",
				SpreadsheetID: getEnv("POD_KELLY_SPREADSHEET_ID", "16Vy6qM_fMwzhSfqcP8iTF87gG4mzefVqbmovoQ1e3ng"),
				Token:         os.Getenv("POD_KELLY_TOKEN"),
				Clients: []ClientConfig{
					{
						Slug:          "nature-made",
						DisplayName:   "Nature Made",
						RawTabName:    "Nature_Made",
						RollupTabName: "📌Nature_Made_rollup",
						Token:         os.Getenv("CLIENT_NATURE_MADE_TOKEN"),
						Skus: []SkuConfig{
							{Name: "Ashwagandha", ColumnOffset: 0},
							{Name: "Magnesium", ColumnOffset: 1},
							{Name: "Probiotic", ColumnOffset: 2},
							{Name: "Growth", ColumnOffset: 3},
						},
					},
					{
						Slug:          "merit",
						DisplayName:   "MERIT",
						RawTabName:    "MERIT",
						RollupTabName: "📌MERIT_rollup",
						Token:         os.Getenv("CLIENT_MERIT_TOKEN"),
						Skus: []SkuConfig{
							{Name: "Creative", ColumnOffset: 0},
							{Name: "Dream", ColumnOffset: 1},
							{Name: "Glow", ColumnOffset: 2},
						},
					},
					{
						Slug:          "more-labs",
						DisplayName:   "More Labs",
						RawTabName:    "More_Labs",
						RollupTabName: "📌More_Labs_rollup",
						Token:         os.Getenv("CLIENT_MORE_LABS_TOKEN"),
						Skus: []SkuConfig{
							{Name: "REGULAR", ColumnOffset: 0},
							{Name: "ENERGY", ColumnOffset: 1},
							{Name: "Sugar free", ColumnOffset: 2},
						},
					},
					{
						Slug:          "trip",
						DisplayName:   "Trip",
						RawTabName:    "Trip",
						RollupTabName: "📌Trip_rollup",
						Token:         os.Getenv("CLIENT_TRIP_TOKEN"),
						Skus: []SkuConfig{
							{Name: "Gummies", ColumnOffset: 0},
							{Name: "Strawberries", ColumnOffset: 1},
							{Name: "Variety Pack", ColumnOffset: 2},
							{Name: "Peach Ginger", ColumnOffset: 3},
							{Name: "Ashawanda Lions Mane", ColumnOffset: 4},
							{Name: "Elderflower Mint", ColumnOffset: 5},
							{Name: "Magnesium Powder", ColumnOffset: 6},
						},
					},
					{
						Slug:          "one-skin",
						DisplayName:   "One Skin",
						RawTabName:    "One_Skin",
						RollupTabName: "📌One_Skin_rollup",
						Token:         os.Getenv("CLIENT_ONE_SKIN_TOKEN"),
					},
					{
						Slug:          "vinergy",
						DisplayName:   "Vinergy",
						RawTabName:    "Vinergy",
						RollupTabName: "📌Vinergy_rollup",
						Token:         os.Getenv("CLIENT_VINERGY_TOKEN"),
					},
				},
			},
			{
				Slug:          "pod2",
				DisplayName:   "Pod 2",
				PodLeadName:   "TBD",
				SpreadsheetID: getEnv("POD_POD2_SPREADSHEET_ID", "1iqAXckFXv3LZ6xjm7UyUUHYHVT6UHTbmlhaob_EAkIo"),
				Token:         os.Getenv("POD_POD2_TOKEN"),
			},
			{
				Slug:          "pod3",
				DisplayName:   "Pod 3",
				PodLeadName:   "TBD",
				SpreadsheetID: getEnv("POD_POD3_SPREADSHEET_ID", "19N_8BnxhAC2v7PL5QMN9aVA6pCAAIKOVTFIy0S2clTk"),
				Token:         os.Getenv("POD_POD3_TOKEN"),
			},
		},
	}
}
