package model

// Taxon identifies an organism, e.g. "NCBITaxon:9606" for Homo sapiens.
type Taxon struct {
	TypedNamedEntity
}

// NewTaxon creates a taxon entity.
func NewTaxon(id, label string) *Taxon {
	return &Taxon{
		TypedNamedEntity: TypedNamedEntity{
			NamedEntity: NamedEntity{ID: id, Label: label},
			Kind:        KindTaxon,
		},
	}
}

// Same reports structural equality of two taxa.
func (t *Taxon) Same(o *Taxon) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.TypedNamedEntity.Same(o.TypedNamedEntity)
}

// GeneProduct is a gene product (protein, RNA, or complex) from a specific
// organism. In a model it appears as the enabler of an activity.
type GeneProduct struct {
	TypedNamedEntity

	// Taxon is the organism the product belongs to.
	Taxon *Taxon
}

// NewGeneProduct creates a gene product entity.
func NewGeneProduct(id, label string, taxon *Taxon) *GeneProduct {
	return &GeneProduct{
		TypedNamedEntity: TypedNamedEntity{
			NamedEntity: NamedEntity{ID: id, Label: label},
			Kind:        KindGeneProduct,
		},
		Taxon: taxon,
	}
}

// Same reports structural equality: base identity plus taxon.
func (g *GeneProduct) Same(o *GeneProduct) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.TypedNamedEntity.Same(o.TypedNamedEntity) && g.Taxon.Same(o.Taxon)
}
