package mysql

// -----------------------------------------------------------------------------
// READ QUERIES — this service never writes; all entities are owned upstream.
// -----------------------------------------------------------------------------

// Explicit projection against the unified view. Never SELECT * here: the view
// grows with upstream schema changes and the response contract must not.
const getPartnerSQL = `
SELECT
  id,
  name,
  type,
  description,
  location,
  price_range,
  rating,
  amenities,
  coordinates,
  images,
  contact_info,
  created_at,
  updated_at
FROM partners_unified
WHERE id = ?
`

const listPartnersSQL = `
SELECT id, name, type, location, rating
FROM partners_unified
ORDER BY name, id
LIMIT ?
`

const listPartnerIDsSQL = `
SELECT id
FROM partners_unified
ORDER BY updated_at DESC, id
LIMIT ?
`

const getProfileSQL = `
SELECT user_id, display_name, avatar_url
FROM profiles
WHERE user_id = ?
`
