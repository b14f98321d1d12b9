package render

// One shader serves every mesh. Untextured materials keep raylib's default white
// texture in the albedo slot, so sampling texture0 leaves their colour unchanged.
//
// uvDensity > 0 replaces the mesh UVs with world-space planar coordinates picked by the
// dominant normal axis, repeating uvDensity times per world unit on every face.
// taper narrows a unit cylinder (base y=0, top y=1) linearly to taper×radius at the top.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform float uvDensity;
uniform float taper;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec3 pos = vertexPosition;
  vec3 normal = vertexNormal;
  if (taper != 1.0) {
    pos.xz *= mix(1.0, taper, clamp(pos.y, 0.0, 1.0));
    if (abs(normal.y) < 0.5) {
      normal = normalize(vec3(normal.x, 1.0 - taper, normal.z));
    }
  }
  vec4 world = matModel * vec4(pos, 1.0);
  fragPosition = world.xyz;
  fragNormal = normalize(transpose(inverse(mat3(matModel))) * normal);

  fragTexCoord = vertexTexCoord;
  if (uvDensity > 0.0) {
    vec3 a = abs(fragNormal);
    vec2 plane = a.y > 0.5 ? world.xz : (a.x > 0.5 ? world.zy : world.xy);
    fragTexCoord = plane * uvDensity;
  }
  gl_Position = mvp * vec4(pos, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;

vec3 shade(vec3 albedo, vec3 n) {
  vec3 l = normalize(lightDir);
  float lambert = max(dot(n, l), 0.0);
  vec3 lit = albedo * (ambient.rgb + lambert * lightColor * lightIntensity);
  if (lambert > 0.0) {
    vec3 h = normalize(l + normalize(viewPos - fragPosition));
    lit += lightColor * pow(max(dot(n, h), 0.0), specularPower) * specularStrength;
  }
  return lit;
}

void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse;
  finalColor = vec4(shade(albedo.rgb, normalize(fragNormal)), albedo.a);
}
`
)
