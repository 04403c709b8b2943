package capped

// Generic limits usable with every width.

type lim1[P Unsigned] struct{}

func (lim1[P]) Limit() P { return 1 }

type lim3[P Unsigned] struct{}

func (lim3[P]) Limit() P { return 3 }

type lim5[P Unsigned] struct{}

func (lim5[P]) Limit() P { return 5 }

type lim10[P Unsigned] struct{}

func (lim10[P]) Limit() P { return 10 }

type lim240[P Unsigned] struct{}

func (lim240[P]) Limit() P { return 240 }

type limMax[P Unsigned] struct{}

func (limMax[P]) Limit() P { return ^P(0) }

type limZero[P Unsigned] struct{}

func (limZero[P]) Limit() P { return 0 }

// Sizes for strings and sequences.

type size0 struct{}

func (size0) Limit() int { return 0 }

type size3 struct{}

func (size3) Limit() int { return 3 }

type size5 struct{}

func (size5) Limit() int { return 5 }

type size8 struct{}

func (size8) Limit() int { return 8 }

type sizeNeg struct{}

func (sizeNeg) Limit() int { return -1 }
